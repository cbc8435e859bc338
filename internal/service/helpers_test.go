package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/storage"
	"context"
	"testing"
)

type testEnv struct {
	store       *storage.Store
	accountRepo repository.AccountRepository

	auth        AuthService
	accounts    AccountService
	departments DepartmentService
	employees   EmployeeService
	requests    RequestService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryMedium())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	accountRepo := repository.NewAccountRepository(store)
	departmentRepo := repository.NewDepartmentRepository(store)
	employeeRepo := repository.NewEmployeeRepository(store)
	requestRepo := repository.NewRequestRepository(store)

	return &testEnv{
		store:       store,
		accountRepo: accountRepo,
		auth:        NewAuthService(accountRepo, store, nil),
		accounts:    NewAccountService(accountRepo, nil),
		departments: NewDepartmentService(departmentRepo, nil),
		employees:   NewEmployeeService(employeeRepo, departmentRepo, nil),
		requests:    NewRequestService(requestRepo, nil),
	}
}

// seedAdmin resolves the seeded admin account.
func (env *testEnv) seedAdmin(t *testing.T) *model.Account {
	t.Helper()
	admin, err := env.accountRepo.GetByEmail(context.Background(), storage.SeedAdminEmail)
	if err != nil {
		t.Fatalf("seed admin missing: %v", err)
	}
	return admin
}

// registerVerified registers and verifies a user-role account.
func (env *testEnv) registerVerified(t *testing.T, email, password string) *model.Account {
	t.Helper()
	ctx := context.Background()
	if _, err := env.auth.Register(ctx, RegisterRequest{
		FirstName: "Test", LastName: "User", Email: email, Password: password,
	}); err != nil {
		t.Fatalf("Register(%s) returned error: %v", email, err)
	}
	if _, err := env.auth.VerifyEmail(ctx); err != nil {
		t.Fatalf("VerifyEmail after registering %s returned error: %v", email, err)
	}
	account, err := env.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("registered account missing: %v", err)
	}
	return account
}
