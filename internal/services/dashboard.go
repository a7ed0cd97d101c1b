package services

import (
	"context"
	"time"

	"github.com/staffdesk/apiserver/types"
)

const recentLeaveLimit = 5

// DashboardService assembles the aggregate figures for the dashboard.
type DashboardService struct {
	employees  EmployeeRepository
	attendance AttendanceRepository
	leaves     LeaveRepository
}

func NewDashboardService(employees EmployeeRepository, attendance AttendanceRepository, leaves LeaveRepository) *DashboardService {
	return &DashboardService{
		employees:  employees,
		attendance: attendance,
		leaves:     leaves,
	}
}

// Stats computes headcount, today's presence, the pending-leave backlog, and
// the per-department breakdown. The attendance rate is a two-decimal
// percentage and reads 0 when there are no active employees.
func (s *DashboardService) Stats(ctx context.Context) (types.DashboardStats, error) {
	totalEmployees, err := s.employees.CountActive(ctx)
	if err != nil {
		return types.DashboardStats{}, err
	}

	today := time.Now().UTC().Format(time.DateOnly)
	presentToday, err := s.attendance.CountByDateStatus(ctx, today, types.AttendanceStatusPresent)
	if err != nil {
		return types.DashboardStats{}, err
	}

	pendingLeaves, err := s.leaves.CountByStatus(ctx, types.LeaveStatusPending)
	if err != nil {
		return types.DashboardStats{}, err
	}

	recentLeaves, err := s.leaves.RecentPending(ctx, recentLeaveLimit)
	if err != nil {
		return types.DashboardStats{}, err
	}

	departmentStats, err := s.employees.CountByDepartment(ctx)
	if err != nil {
		return types.DashboardStats{}, err
	}

	rate := 0.0
	if totalEmployees > 0 {
		rate = round2(float64(presentToday) / float64(totalEmployees) * 100)
	}

	return types.DashboardStats{
		TotalEmployees:  totalEmployees,
		PresentToday:    presentToday,
		PendingLeaves:   pendingLeaves,
		RecentLeaves:    recentLeaves,
		DepartmentStats: departmentStats,
		AttendanceRate:  rate,
	}, nil
}
