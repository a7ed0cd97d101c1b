package services

import (
	"context"

	"github.com/staffdesk/apiserver/types"
)

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, employee types.Employee) (types.Employee, error)
	GetByID(ctx context.Context, id string) (types.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (types.Employee, error)
	ListActive(ctx context.Context) ([]types.Employee, error)
	Update(ctx context.Context, id string, patch types.EmployeeUpsert) (types.Employee, error)
	Deactivate(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
	CountByDepartment(ctx context.Context) ([]types.DepartmentCount, error)
}

// EmployeeService encapsulates employee use-cases.
type EmployeeService struct {
	repo EmployeeRepository
}

func NewEmployeeService(repo EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Create builds an employee record from the payload. Status defaults to
// active when the payload leaves it empty.
func (s *EmployeeService) Create(ctx context.Context, req types.EmployeeUpsert) (types.Employee, error) {
	status := req.Status
	if status == "" {
		status = types.EmployeeStatusActive
	}
	return s.repo.Create(ctx, types.Employee{
		EmployeeID:       req.EmployeeID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Department:       req.Department,
		Designation:      req.Designation,
		DateOfJoining:    req.DateOfJoining,
		Salary:           req.Salary,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		BloodGroup:       req.BloodGroup,
		Status:           status,
	})
}

func (s *EmployeeService) Get(ctx context.Context, id string) (types.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) ListActive(ctx context.Context) ([]types.Employee, error) {
	return s.repo.ListActive(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id string, req types.EmployeeUpsert) (types.Employee, error) {
	if req.Status == "" {
		req.Status = types.EmployeeStatusActive
	}
	return s.repo.Update(ctx, id, req)
}

func (s *EmployeeService) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
