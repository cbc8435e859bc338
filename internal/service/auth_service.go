package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/storage"
	"backend/internal/websocket"
	"backend/pkg/identifier"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for request validation
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the profile view model for the authenticated account.
type ProfileResponse struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	RoleLabel string `json:"roleLabel"` // capitalized, for display
}

// AuthService defines the interface for registration, verification and
// session establishment.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error)
	PendingVerification(ctx context.Context) (string, error)
	VerifyEmail(ctx context.Context) (*AccountResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Profile(account *model.Account) ProfileResponse
}

type authService struct {
	accounts repository.AccountRepository
	store    *storage.Store
	hub      *websocket.Hub
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(accounts repository.AccountRepository, store *storage.Store, hub *websocket.Hub) AuthService {
	return &authService{accounts: accounts, store: store, hub: hub}
}

// Register creates an unverified user-role account and records its email as
// pending verification.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	account := &model.Account{
		ID:        identifier.New(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  string(hash),
		Role:      model.RoleUser,
		Verified:  false,
	}

	// Uniqueness is enforced by the repository inside the write lock, so
	// concurrent registrations of the same email cannot both land.
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if err := s.store.PersistKey(ctx, storage.UnverifiedEmailKey, email); err != nil {
		return nil, err
	}

	s.hub.Notify("account.registered", email, "Registration complete. Verify your email.")
	return mapAccountToResponse(account), nil
}

// PendingVerification returns the email recorded at registration and still
// awaiting verification.
func (s *authService) PendingVerification(ctx context.Context) (string, error) {
	email, ok, err := s.store.RetrieveKey(ctx, storage.UnverifiedEmailKey)
	if err != nil {
		return "", err
	}
	if !ok || email == "" {
		return "", ErrNoPendingEmail
	}
	return email, nil
}

// VerifyEmail marks the account recorded as pending verification as
// verified and clears the pending key. Only the pending email can be
// verified; callers never choose the target.
func (s *authService) VerifyEmail(ctx context.Context) (*AccountResponse, error) {
	email, err := s.PendingVerification(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	account.Verified = true
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	if err := s.store.ClearKey(ctx, storage.UnverifiedEmailKey); err != nil {
		return nil, err
	}

	s.hub.Notify("account.verified", account.Email, "Email verified! You can log in.")
	return mapAccountToResponse(account), nil
}

// Login authenticates by case-insensitive email and password, refusing
// unverified accounts, and issues a session token whose subject is the
// account email.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.Verified {
		return nil, ErrNotVerified
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strings.ToLower(account.Email),
		"role": account.Role,
	})

	// Use same fallback strategy as the middleware
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString}, nil
}

// Profile computes the profile view model from the resolved account.
func (s *authService) Profile(account *model.Account) ProfileResponse {
	role := account.Role
	if role == "" {
		role = model.RoleUser
	}
	return ProfileResponse{
		FullName:  account.FirstName + " " + account.LastName,
		Email:     account.Email,
		Role:      role,
		RoleLabel: strings.ToUpper(role[:1]) + role[1:],
	}
}
