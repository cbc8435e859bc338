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

// DTO for request validation. The employee id label, position, department
// and hire date are free-form; only the account linkage is enforced.
type SaveEmployeeRequest struct {
	EmployeeID   string `json:"employeeId"`
	UserEmail    string `json:"userEmail" binding:"required,email"`
	Position     string `json:"position"`
	DepartmentID string `json:"departmentId"`
	HireDate     string `json:"hireDate"`
}

// EmployeeResponse is the listing view model: the department reference is
// resolved to its name.
type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	UserEmail      string `json:"userEmail"`
	Position       string `json:"position"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	HireDate       string `json:"hireDate"`
}

// EmployeeService defines employee management. Employees have no delete
// path.
type EmployeeService interface {
	ListEmployees(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error)
	CreateEmployee(ctx context.Context, req SaveEmployeeRequest) (*EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req SaveEmployeeRequest) (*EmployeeResponse, error)
}

type employeeService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	hub         *websocket.Hub
}

// NewEmployeeService returns a new instance of EmployeeService
func NewEmployeeService(
	employees repository.EmployeeRepository,
	departments repository.DepartmentRepository,
	hub *websocket.Hub,
) EmployeeService {
	return &employeeService{
		employees:   employees,
		departments: departments,
		hub:         hub,
	}
}

func (s *employeeService) mapEmployeeToResponse(ctx context.Context, employee *model.Employee) *EmployeeResponse {
	departmentName := ""
	if employee.DepartmentID != "" {
		if department, err := s.departments.GetByID(ctx, employee.DepartmentID); err == nil {
			departmentName = department.Name
		}
	}
	return &EmployeeResponse{
		ID:             employee.ID,
		EmployeeID:     employee.EmployeeID,
		UserEmail:      employee.UserEmail,
		Position:       employee.Position,
		DepartmentID:   employee.DepartmentID,
		DepartmentName: departmentName,
		HireDate:       employee.HireDate,
	}
}

func (s *employeeService) ListEmployees(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error) {
	employees, total, err := s.employees.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *s.mapEmployeeToResponse(ctx, &employees[i]))
	}
	return responses, total, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req SaveEmployeeRequest) (*EmployeeResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	employee := &model.Employee{
		ID:           identifier.New(),
		EmployeeID:   strings.TrimSpace(req.EmployeeID),
		UserEmail:    email,
		Position:     strings.TrimSpace(req.Position),
		DepartmentID: req.DepartmentID,
		HireDate:     req.HireDate,
	}

	// The account linkage is verified by the repository under the write lock.
	if err := s.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrNoLinkedAccount) {
			return nil, ErrAccountMissing
		}
		return nil, err
	}

	s.hub.Notify("employee.created", employee.ID, "Employee saved")
	return s.mapEmployeeToResponse(ctx, employee), nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req SaveEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	employee.EmployeeID = strings.TrimSpace(req.EmployeeID)
	employee.UserEmail = email
	employee.Position = strings.TrimSpace(req.Position)
	employee.DepartmentID = req.DepartmentID
	employee.HireDate = req.HireDate

	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrNoLinkedAccount) {
			return nil, ErrAccountMissing
		}
		return nil, err
	}

	s.hub.Notify("employee.updated", employee.ID, "Employee saved")
	return s.mapEmployeeToResponse(ctx, employee), nil
}
