package repository

import (
	"backend/internal/model"
	"backend/internal/storage"
	"context"
	"errors"
	"strings"
)

// ErrNoLinkedAccount is returned when an employee's user email matches no
// account. The check runs inside the store's write transaction.
var ErrNoLinkedAccount = errors.New("no account matches the user email")

// EmployeeRepository defines the interface for data access of Employee
// records. Employees have no delete path.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context, page, limit int) ([]model.Employee, int64, error)
	Update(ctx context.Context, employee *model.Employee) error
}

type employeeRepository struct {
	store *storage.Store
}

// NewEmployeeRepository returns a store-backed EmployeeRepository
func NewEmployeeRepository(store *storage.Store) EmployeeRepository {
	return &employeeRepository{store: store}
}

// accountEmailExists scans under the caller's lock.
func accountEmailExists(state *storage.State, email string) bool {
	for i := range state.Accounts {
		if strings.EqualFold(state.Accounts[i].Email, email) {
			return true
		}
	}
	return false
}

// Create appends the employee, refusing a user email that resolves to no
// account at write time.
func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		if !accountEmailExists(state, employee.UserEmail) {
			return ErrNoLinkedAccount
		}
		state.Employees = append(state.Employees, *employee)
		return nil
	})
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var found *model.Employee
	r.store.View(func(state *storage.State) {
		for i := range state.Employees {
			if state.Employees[i].ID == id {
				employee := state.Employees[i]
				found = &employee
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *employeeRepository) List(ctx context.Context, page, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64
	r.store.View(func(state *storage.State) {
		total = int64(len(state.Employees))
		employees = pageSlice(state.Employees, page, limit)
	})
	return employees, total, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		if !accountEmailExists(state, employee.UserEmail) {
			return ErrNoLinkedAccount
		}
		for i := range state.Employees {
			if state.Employees[i].ID == employee.ID {
				state.Employees[i] = *employee
				return nil
			}
		}
		return ErrNotFound
	})
}
