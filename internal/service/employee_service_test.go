package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateEmployeeRequiresExistingAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.employees.CreateEmployee(context.Background(), SaveEmployeeRequest{
		UserEmail: "nobody@x.com", Position: "Ghost",
	})
	if !errors.Is(err, ErrAccountMissing) {
		t.Fatalf("CreateEmployee(unknown email) error = %v, want ErrAccountMissing", err)
	}

	employees, total, listErr := env.employees.ListEmployees(context.Background(), 1, 20)
	if listErr != nil {
		t.Fatalf("ListEmployees() returned error: %v", listErr)
	}
	if total != 0 || len(employees) != 0 {
		t.Error("refused create must leave the store unchanged")
	}
}

func TestEmployeeListingResolvesDepartmentName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerVerified(t, "worker@x.com", "secret1")

	ops, err := env.departments.CreateDepartment(ctx, SaveDepartmentRequest{Name: "Ops"})
	if err != nil {
		t.Fatalf("CreateDepartment() returned error: %v", err)
	}

	// The account email is matched case-insensitively and stored lowercased.
	created, err := env.employees.CreateEmployee(ctx, SaveEmployeeRequest{
		EmployeeID: "EMP-7", UserEmail: "WORKER@X.COM", Position: "Engineer",
		DepartmentID: ops.ID, HireDate: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() returned error: %v", err)
	}
	if created.UserEmail != "worker@x.com" {
		t.Errorf("stored email = %q, want lowercased", created.UserEmail)
	}

	employees, _, err := env.employees.ListEmployees(ctx, 1, 20)
	if err != nil {
		t.Fatalf("ListEmployees() returned error: %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(employees))
	}
	if employees[0].DepartmentName != "Ops" {
		t.Errorf("DepartmentName = %q, want Ops (resolved, not the raw id)", employees[0].DepartmentName)
	}
}

func TestUpdateEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerVerified(t, "worker@x.com", "secret1")

	created, err := env.employees.CreateEmployee(ctx, SaveEmployeeRequest{
		UserEmail: "worker@x.com", Position: "Engineer",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() returned error: %v", err)
	}

	updated, err := env.employees.UpdateEmployee(ctx, created.ID, SaveEmployeeRequest{
		UserEmail: "worker@x.com", Position: "Senior Engineer",
	})
	if err != nil {
		t.Fatalf("UpdateEmployee() returned error: %v", err)
	}
	if updated.Position != "Senior Engineer" {
		t.Errorf("Position = %q after update", updated.Position)
	}

	// Rebinding to a nonexistent account is refused.
	if _, err := env.employees.UpdateEmployee(ctx, created.ID, SaveEmployeeRequest{
		UserEmail: "ghost@x.com",
	}); !errors.Is(err, ErrAccountMissing) {
		t.Errorf("UpdateEmployee(unknown email) error = %v, want ErrAccountMissing", err)
	}
}
