package handler

import (
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/storage"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full API surface against an in-memory store,
// mirroring the production wiring.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store := storage.NewStore(storage.NewMemoryMedium())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	accountRepo := repository.NewAccountRepository(store)
	departmentRepo := repository.NewDepartmentRepository(store)
	employeeRepo := repository.NewEmployeeRepository(store)
	requestRepo := repository.NewRequestRepository(store)

	authService := service.NewAuthService(accountRepo, store, nil)
	accountService := service.NewAccountService(accountRepo, nil)
	departmentService := service.NewDepartmentService(departmentRepo, nil)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, nil)
	requestService := service.NewRequestService(requestRepo, nil)

	requireAuth := middleware.RequireAuth(accountRepo)
	requireAdmin := middleware.RequireAdmin(accountRepo)

	router := gin.New()
	api := router.Group("/")
	NewAuthHandler(authService).RegisterRoutes(api, requireAuth)
	NewAccountHandler(accountService).RegisterRoutes(api, requireAdmin)
	NewDepartmentHandler(departmentService).RegisterRoutes(api, requireAdmin)
	NewEmployeeHandler(employeeService).RegisterRoutes(api, requireAdmin)
	NewRequestHandler(requestService).RegisterRoutes(api, requireAuth)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginToken walks the login endpoint and extracts the issued token.
func loginToken(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/login", "", gin.H{
		"email": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatal("login response carries no token")
	}
	return envelope.Data.Token
}

func TestRequestsRequireAuthentication(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/requests", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /requests without token: status %d, want 401", rec.Code)
	}
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	router := newTestRouter(t)

	// Register and verify a plain user, then hit an admin route.
	rec := doJSON(t, router, http.MethodPost, "/register", "", gin.H{
		"firstName": "Reg", "lastName": "User", "email": "reg@x.com", "password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(t, router, http.MethodPost, "/verify-email", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("verify-email: status %d, body %s", rec.Code, rec.Body.String())
	}

	token := loginToken(t, router, "reg@x.com", "secret1")

	for _, path := range []string{"/accounts", "/departments", "/employees"} {
		rec := doJSON(t, router, http.MethodGet, path, token, nil)
		if rec.Code != http.StatusForbidden {
			t.Errorf("GET %s as user: status %d, want 403", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Access denied. Admin only.") {
			t.Errorf("GET %s as user: body %s lacks the denial message", path, rec.Body.String())
		}
	}
}

func TestAdminRoutesAcceptSeedAdmin(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, storage.SeedAdminEmail, storage.SeedAdminPassword)

	for _, path := range []string{"/accounts", "/departments", "/employees"} {
		rec := doJSON(t, router, http.MethodGet, path, token, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s as admin: status %d, body %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestRegisterVerifyLoginMeFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/register", "", gin.H{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@x.com", "password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", rec.Code, rec.Body.String())
	}

	// Login before verification is refused.
	if rec := doJSON(t, router, http.MethodPost, "/login", "", gin.H{
		"email": "ada@x.com", "password": "secret1",
	}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("login before verification: status %d, want 401", rec.Code)
	}

	// The pending email is exposed for the verification screen.
	rec = doJSON(t, router, http.MethodGet, "/verify-email", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ada@x.com") {
		t.Fatalf("GET /verify-email: status %d, body %s", rec.Code, rec.Body.String())
	}

	if rec := doJSON(t, router, http.MethodPost, "/verify-email", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("verify-email: status %d, body %s", rec.Code, rec.Body.String())
	}

	token := loginToken(t, router, "ada@x.com", "secret1")

	rec = doJSON(t, router, http.MethodGet, "/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /me: status %d, body %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data service.ProfileResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode /me response: %v", err)
	}
	if envelope.Data.Email != "ada@x.com" {
		t.Errorf("/me email = %q, want ada@x.com", envelope.Data.Email)
	}
	if envelope.Data.FullName != "Ada Lovelace" {
		t.Errorf("/me full name = %q", envelope.Data.FullName)
	}
}

func TestSessionCookieAuthenticates(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/login", "", gin.H{
		"email": storage.SeedAdminEmail, "password": storage.SeedAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", rec.Code, rec.Body.String())
	}

	var authCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "auth_token" {
			authCookie = cookie
		}
	}
	if authCookie == nil || authCookie.Value == "" {
		t.Fatal("login did not set the auth_token cookie")
	}
	if !authCookie.HttpOnly {
		t.Error("auth_token cookie must be HttpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(authCookie)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, req)
	if meRec.Code != http.StatusOK {
		t.Fatalf("GET /me with cookie: status %d, body %s", meRec.Code, meRec.Body.String())
	}
}

func TestStaleSessionRejected(t *testing.T) {
	router := newTestRouter(t)

	// A well-formed token whose subject no longer resolves to an account
	// must not authenticate.
	claims := jwt.MapClaims{
		"sub": "ghost@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("default_super_secret_key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec := doJSON(t, router, http.MethodGet, "/me", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /me with stale token: status %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Session is no longer valid") {
		t.Errorf("stale session body: %s", rec.Body.String())
	}
}

func TestAccountCRUDOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, storage.SeedAdminEmail, storage.SeedAdminPassword)

	rec := doJSON(t, router, http.MethodPost, "/accounts", token, gin.H{
		"firstName": "New", "lastName": "Hire", "email": "hire@x.com",
		"password": "secret1", "role": "user", "verified": true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /accounts: status %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data service.AccountResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	// Duplicate email is a conflict.
	if rec := doJSON(t, router, http.MethodPost, "/accounts", token, gin.H{
		"firstName": "Dup", "lastName": "Hire", "email": "HIRE@X.COM",
		"password": "secret1", "role": "user",
	}); rec.Code != http.StatusConflict {
		t.Errorf("duplicate POST /accounts: status %d, want 409", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/accounts/%s", created.Data.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("DELETE /accounts/:id: status %d, body %s", rec.Code, rec.Body.String())
	}

	// Deleting an unknown id is a 404.
	if rec := doJSON(t, router, http.MethodDelete, "/accounts/no-such-id", token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("DELETE unknown account: status %d, want 404", rec.Code)
	}
}

func TestRequestSubmissionOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, storage.SeedAdminEmail, storage.SeedAdminPassword)

	rec := doJSON(t, router, http.MethodPost, "/requests", token, gin.H{
		"type": "equipment",
		"items": []gin.H{
			{"name": "laptop", "qty": 1},
			{"name": "", "qty": 3},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /requests: status %d, body %s", rec.Code, rec.Body.String())
	}

	// All-blank item lists are refused.
	if rec := doJSON(t, router, http.MethodPost, "/requests", token, gin.H{
		"type": "equipment", "items": []gin.H{{"name": "  ", "qty": 1}},
	}); rec.Code != http.StatusBadRequest {
		t.Errorf("POST /requests with blank items: status %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/requests", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /requests: status %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "laptop") {
		t.Errorf("submitted request missing from listing: %s", rec.Body.String())
	}
}
