package middleware

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/response"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccountKey is the gin context key the resolved account is stored under.
const AccountKey = "account"

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in release mode")
		}
		secret = "default_super_secret_key" // Development fallback only. DO NOT use in production.
	}
	return []byte(secret)
}

// SetTokenCookie sets the session token as an HttpOnly cookie
func SetTokenCookie(c *gin.Context, token string) {
	// Production (cross-origin): SameSiteNoneMode + Secure=true
	// Development (same-site):   SameSiteLaxMode  + Secure=false
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("auth_token", token, 3600*24, "/", "", secure, true)
}

// ClearTokenCookie removes the session cookie
func ClearTokenCookie(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("auth_token", "", -1, "/", "", secure, true)
}

// CurrentAccount returns the account resolved by RequireAuth/RequireAdmin.
func CurrentAccount(c *gin.Context) (*model.Account, bool) {
	value, exists := c.Get(AccountKey)
	if !exists {
		return nil, false
	}
	account, ok := value.(*model.Account)
	return account, ok
}

// RequireAuth validates the session token and resolves its subject (the
// account email) to a live account on every request. Missing, deleted or
// unverified accounts are treated as anonymous.
func RequireAuth(accounts repository.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := resolveAccount(c, accounts)
		if !ok {
			return
		}
		c.Set(AccountKey, account)
		c.Next()
	}
}

// RequireAdmin validates the session token and additionally requires the
// admin role.
func RequireAdmin(accounts repository.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := resolveAccount(c, accounts)
		if !ok {
			return
		}
		if account.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied. Admin only."))
			return
		}
		c.Set(AccountKey, account)
		c.Next()
	}
}

// resolveAccount parses the token (cookie first, Authorization header as
// fallback) and looks the subject up in the store. Aborts with 401 and
// returns false on any failure.
func resolveAccount(c *gin.Context, accounts repository.AccountRepository) (*model.Account, bool) {
	tokenString, cookieErr := c.Cookie("auth_token")
	if cookieErr != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return nil, false
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return nil, false
		}
		tokenString = parts[1]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return GetJWTSecret(), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token claims"))
		return nil, false
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Subject not found in token"))
		return nil, false
	}

	account, err := accounts.GetByEmail(c.Request.Context(), email)
	if err != nil || !account.Verified {
		// The token no longer resolves to a usable account; discard it.
		ClearTokenCookie(c)
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Session is no longer valid"))
		return nil, false
	}

	return account, true
}
