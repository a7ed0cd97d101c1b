package services

import (
	"context"
	"fmt"

	"github.com/staffdesk/apiserver/internal/store"
	"github.com/staffdesk/apiserver/types"
)

// AttendanceRepository defines persistence operations for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, record types.Attendance) (types.Attendance, error)
	GetByID(ctx context.Context, id string) (types.Attendance, error)
	List(ctx context.Context, filter store.AttendanceFilter) ([]types.Attendance, error)
	ListDateRange(ctx context.Context, start, end string) ([]types.Attendance, error)
	SetCheckOut(ctx context.Context, id, checkOut string, hours *float64) error
	CountByDateStatus(ctx context.Context, date, status string) (int, error)
}

// AttendanceService encapsulates attendance use-cases.
type AttendanceService struct {
	repo      AttendanceRepository
	employees EmployeeRepository
}

func NewAttendanceService(repo AttendanceRepository, employees EmployeeRepository) *AttendanceService {
	return &AttendanceService{repo: repo, employees: employees}
}

// Mark records one day's attendance for an employee. The employee's name is
// snapshotted onto the record at creation time. Working hours are derived
// only when a check-out time is supplied.
func (s *AttendanceService) Mark(ctx context.Context, req types.AttendanceCreate) (types.Attendance, error) {
	employee, err := s.employees.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return types.Attendance{}, err
	}

	var hours *float64
	if req.CheckOut != "" {
		hours = ComputeWorkingHours(req.CheckIn, req.CheckOut)
	}

	return s.repo.Create(ctx, types.Attendance{
		EmployeeID:   req.EmployeeID,
		EmployeeName: employee.FullName,
		Date:         req.Date,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Status:       req.Status,
		WorkingHours: hours,
	})
}

func (s *AttendanceService) List(ctx context.Context, filter store.AttendanceFilter) ([]types.Attendance, error) {
	return s.repo.List(ctx, filter)
}

// RecordCheckOut overwrites the check-out time of an existing record and
// recomputes its working hours from the stored check-in. Repeated calls are
// idempotent overwrites, not errors.
func (s *AttendanceService) RecordCheckOut(ctx context.Context, id, checkOut string) (*float64, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hours := ComputeWorkingHours(record.CheckIn, checkOut)
	if err := s.repo.SetCheckOut(ctx, id, checkOut, hours); err != nil {
		return nil, err
	}
	return hours, nil
}

// MonthlyReport aggregates one calendar month of attendance per employee.
// The range is the inclusive string interval YYYY-MM-01..YYYY-MM-31; day 31
// is a harmless upper bound under ISO string ordering even for shorter
// months.
func (s *AttendanceService) MonthlyReport(ctx context.Context, month, year string) (types.AttendanceReport, error) {
	if len(month) == 1 {
		month = "0" + month
	}
	start := fmt.Sprintf("%s-%s-01", year, month)
	end := fmt.Sprintf("%s-%s-31", year, month)

	records, err := s.repo.ListDateRange(ctx, start, end)
	if err != nil {
		return types.AttendanceReport{}, err
	}

	byEmployee := map[string]*types.EmployeeAttendanceSummary{}
	order := []string{}
	for _, record := range records {
		summary, ok := byEmployee[record.EmployeeID]
		if !ok {
			summary = &types.EmployeeAttendanceSummary{
				EmployeeID:   record.EmployeeID,
				EmployeeName: record.EmployeeName,
			}
			byEmployee[record.EmployeeID] = summary
			order = append(order, record.EmployeeID)
		}

		switch record.Status {
		case types.AttendanceStatusPresent:
			summary.Present++
		case types.AttendanceStatusAbsent:
			summary.Absent++
		case types.AttendanceStatusHalfDay:
			summary.HalfDay++
		case types.AttendanceStatusLeave:
			summary.Leave++
		}
		if record.WorkingHours != nil {
			summary.TotalHours = round2(summary.TotalHours + *record.WorkingHours)
		}
	}

	data := make([]types.EmployeeAttendanceSummary, 0, len(order))
	for _, id := range order {
		data = append(data, *byEmployee[id])
	}

	return types.AttendanceReport{Month: month, Year: year, Data: data}, nil
}
