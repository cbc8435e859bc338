package repository

import (
	"backend/internal/model"
	"backend/internal/storage"
	"context"
	"errors"
)

// ErrDepartmentReferenced is returned when a delete would orphan employees
// still assigned to the department. The check runs inside the store's write
// transaction.
var ErrDepartmentReferenced = errors.New("department still has employees")

// DepartmentRepository defines the interface for data access of Department records
type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) error
	GetByID(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context, page, limit int) ([]model.Department, int64, error)
	Update(ctx context.Context, department *model.Department) error
	Delete(ctx context.Context, id string) error
}

type departmentRepository struct {
	store *storage.Store
}

// NewDepartmentRepository returns a store-backed DepartmentRepository
func NewDepartmentRepository(store *storage.Store) DepartmentRepository {
	return &departmentRepository{store: store}
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		state.Departments = append(state.Departments, *department)
		return nil
	})
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*model.Department, error) {
	var found *model.Department
	r.store.View(func(state *storage.State) {
		for i := range state.Departments {
			if state.Departments[i].ID == id {
				department := state.Departments[i]
				found = &department
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *departmentRepository) List(ctx context.Context, page, limit int) ([]model.Department, int64, error) {
	var departments []model.Department
	var total int64
	r.store.View(func(state *storage.State) {
		total = int64(len(state.Departments))
		departments = pageSlice(state.Departments, page, limit)
	})
	return departments, total, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *model.Department) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		for i := range state.Departments {
			if state.Departments[i].ID == department.ID {
				state.Departments[i] = *department
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete removes the department unless any employee still references it.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(state *storage.State) error {
		for i := range state.Employees {
			if state.Employees[i].DepartmentID == id {
				return ErrDepartmentReferenced
			}
		}
		for i := range state.Departments {
			if state.Departments[i].ID == id {
				state.Departments = append(state.Departments[:i], state.Departments[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
