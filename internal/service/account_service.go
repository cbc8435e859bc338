package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"backend/pkg/identifier"
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DTOs for request validation
type CreateAccountRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
	Verified  bool   `json:"verified"`
}

type UpdateAccountRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=6"` // blank keeps the current password
	Role      string `json:"role" binding:"required"`
	Verified  bool   `json:"verified"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// AccountResponse returns an account without exposing the password hash.
type AccountResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// AccountService defines the admin-facing account management surface.
type AccountService interface {
	ListAccounts(ctx context.Context, page, limit int) ([]AccountResponse, int64, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error)
	UpdateAccount(ctx context.Context, id string, req UpdateAccountRequest) (*AccountResponse, error)
	DeleteAccount(ctx context.Context, id string, acting *model.Account) error
	ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error
}

type accountService struct {
	accounts repository.AccountRepository
	hub      *websocket.Hub
}

// NewAccountService returns a new instance of AccountService
func NewAccountService(accounts repository.AccountRepository, hub *websocket.Hub) AccountService {
	return &accountService{accounts: accounts, hub: hub}
}

func mapAccountToResponse(account *model.Account) *AccountResponse {
	return &AccountResponse{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      account.Role,
		Verified:  account.Verified,
	}
}

func (s *accountService) ListAccounts(ctx context.Context, page, limit int) ([]AccountResponse, int64, error) {
	accounts, total, err := s.accounts.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, *mapAccountToResponse(&accounts[i]))
	}
	return responses, total, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

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
		Role:      req.Role,
		Verified:  req.Verified,
	}

	// Email uniqueness is checked by the repository under the write lock.
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.hub.Notify("account.created", email, "Account saved")
	return mapAccountToResponse(account), nil
}

func (s *accountService) UpdateAccount(ctx context.Context, id string, req UpdateAccountRequest) (*AccountResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	account.FirstName = strings.TrimSpace(req.FirstName)
	account.LastName = strings.TrimSpace(req.LastName)
	account.Email = email
	account.Role = req.Role
	account.Verified = req.Verified
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("failed to hash password")
		}
		account.Password = string(hash)
	}

	// Uniqueness against other records is re-checked under the write lock.
	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.hub.Notify("account.updated", email, "Account saved")
	return mapAccountToResponse(account), nil
}

// DeleteAccount removes an account, refusing to remove the acting admin's
// own record.
func (s *accountService) DeleteAccount(ctx context.Context, id string, acting *model.Account) error {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if acting != nil && strings.EqualFold(account.Email, acting.Email) {
		return ErrSelfDelete
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Notify("account.deleted", account.Email, "Account deleted")
	return nil
}

// ResetPassword overwrites the stored credential with a hash of the new
// password.
func (s *accountService) ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}
	account.Password = string(hash)

	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}

	s.hub.Notify("account.password_reset", account.Email, "Password reset")
	return nil
}
