package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"backend/pkg/identifier"
	"context"
	"errors"
	"strings"
)

// DTO for request validation
type SaveDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentService defines department management. Deletion is refused
// while any employee still references the department.
type DepartmentService interface {
	ListDepartments(ctx context.Context, page, limit int) ([]DepartmentResponse, int64, error)
	CreateDepartment(ctx context.Context, req SaveDepartmentRequest) (*DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req SaveDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}

type departmentService struct {
	departments repository.DepartmentRepository
	hub         *websocket.Hub
}

// NewDepartmentService returns a new instance of DepartmentService
func NewDepartmentService(departments repository.DepartmentRepository, hub *websocket.Hub) DepartmentService {
	return &departmentService{departments: departments, hub: hub}
}

func mapDepartmentToResponse(department *model.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
	}
}

func (s *departmentService) ListDepartments(ctx context.Context, page, limit int) ([]DepartmentResponse, int64, error) {
	departments, total, err := s.departments.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, *mapDepartmentToResponse(&departments[i]))
	}
	return responses, total, nil
}

func (s *departmentService) CreateDepartment(ctx context.Context, req SaveDepartmentRequest) (*DepartmentResponse, error) {
	department := &model.Department{
		ID:          identifier.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}

	s.hub.Notify("department.created", department.ID, "Department added")
	return mapDepartmentToResponse(department), nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, id string, req SaveDepartmentRequest) (*DepartmentResponse, error) {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = strings.TrimSpace(req.Name)
	department.Description = strings.TrimSpace(req.Description)

	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}

	s.hub.Notify("department.updated", department.ID, "Department saved")
	return mapDepartmentToResponse(department), nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, id string) error {
	// The referential check runs inside the write lock with the removal, so
	// a concurrent employee create cannot slip past it.
	if err := s.departments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDepartmentReferenced) {
			return ErrDepartmentInUse
		}
		return err
	}

	s.hub.Notify("department.deleted", id, "Department deleted")
	return nil
}
