package services

import (
	"context"

	"github.com/staffdesk/apiserver/internal/store"
	"github.com/staffdesk/apiserver/types"
)

// LeaveRepository defines persistence operations for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, leave types.Leave) (types.Leave, error)
	List(ctx context.Context, filter store.LeaveFilter) ([]types.Leave, error)
	RecentPending(ctx context.Context, limit int) ([]types.Leave, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	Review(ctx context.Context, id, status, reviewedBy string) error
}

// LeaveService encapsulates leave use-cases.
type LeaveService struct {
	repo      LeaveRepository
	employees EmployeeRepository
}

func NewLeaveService(repo LeaveRepository, employees EmployeeRepository) *LeaveService {
	return &LeaveService{repo: repo, employees: employees}
}

// Apply files a new leave request in the pending state, snapshotting the
// employee's name onto the request.
func (s *LeaveService) Apply(ctx context.Context, req types.LeaveCreate) (types.Leave, error) {
	employee, err := s.employees.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return types.Leave{}, err
	}

	return s.repo.Create(ctx, types.Leave{
		EmployeeID:   req.EmployeeID,
		EmployeeName: employee.FullName,
		LeaveType:    req.LeaveType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		DaysCount:    req.DaysCount,
		Status:       types.LeaveStatusPending,
	})
}

func (s *LeaveService) List(ctx context.Context, filter store.LeaveFilter) ([]types.Leave, error) {
	return s.repo.List(ctx, filter)
}

// Approve marks a request approved on behalf of the named reviewer.
func (s *LeaveService) Approve(ctx context.Context, id, reviewedBy string) error {
	return s.repo.Review(ctx, id, types.LeaveStatusApproved, reviewedBy)
}

// Reject marks a request rejected on behalf of the named reviewer.
func (s *LeaveService) Reject(ctx context.Context, id, reviewedBy string) error {
	return s.repo.Review(ctx, id, types.LeaveStatusRejected, reviewedBy)
}
