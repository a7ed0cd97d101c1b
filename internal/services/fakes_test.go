package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/staffdesk/apiserver/internal/store"
	"github.com/staffdesk/apiserver/types"
)

// fakeEmployeeRepo is an in-memory EmployeeRepository keyed by both the
// document id and the badge number.
type fakeEmployeeRepo struct {
	byID    map[string]types.Employee
	nextSeq int
}

func newFakeEmployeeRepo(employees ...types.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{byID: map[string]types.Employee{}}
	for _, employee := range employees {
		repo.byID[employee.ID] = employee
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, employee types.Employee) (types.Employee, error) {
	for _, existing := range r.byID {
		if existing.EmployeeID == employee.EmployeeID {
			return types.Employee{}, store.ErrConflict
		}
	}
	r.nextSeq++
	employee.ID = fmt.Sprintf("emp-%d", r.nextSeq)
	r.byID[employee.ID] = employee
	return employee, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (types.Employee, error) {
	employee, ok := r.byID[id]
	if !ok {
		return types.Employee{}, store.ErrNotFound
	}
	return employee, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (types.Employee, error) {
	for _, employee := range r.byID {
		if employee.EmployeeID == employeeID {
			return employee, nil
		}
	}
	return types.Employee{}, store.ErrNotFound
}

func (r *fakeEmployeeRepo) ListActive(ctx context.Context) ([]types.Employee, error) {
	active := []types.Employee{}
	for _, employee := range r.byID {
		if employee.Status == types.EmployeeStatusActive {
			active = append(active, employee)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, id string, patch types.EmployeeUpsert) (types.Employee, error) {
	employee, ok := r.byID[id]
	if !ok {
		return types.Employee{}, store.ErrNotFound
	}
	employee.EmployeeID = patch.EmployeeID
	employee.FullName = patch.FullName
	employee.Email = patch.Email
	employee.Phone = patch.Phone
	employee.Department = patch.Department
	employee.Designation = patch.Designation
	employee.DateOfJoining = patch.DateOfJoining
	employee.Salary = patch.Salary
	employee.Address = patch.Address
	employee.EmergencyContact = patch.EmergencyContact
	employee.BloodGroup = patch.BloodGroup
	employee.Status = patch.Status
	r.byID[id] = employee
	return employee, nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	employee, ok := r.byID[id]
	if !ok || employee.Status == types.EmployeeStatusInactive {
		return store.ErrNotFound
	}
	employee.Status = types.EmployeeStatusInactive
	r.byID[id] = employee
	return nil
}

func (r *fakeEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	count := 0
	for _, employee := range r.byID {
		if employee.Status == types.EmployeeStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeEmployeeRepo) CountByDepartment(ctx context.Context) ([]types.DepartmentCount, error) {
	buckets := map[string]int{}
	for _, employee := range r.byID {
		if employee.Status == types.EmployeeStatusActive {
			buckets[employee.Department]++
		}
	}
	counts := []types.DepartmentCount{}
	for department, count := range buckets {
		counts = append(counts, types.DepartmentCount{Department: department, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Department < counts[j].Department })
	return counts, nil
}

// fakeAttendanceRepo is an in-memory AttendanceRepository enforcing the
// one-record-per-day rule the real unique index provides.
type fakeAttendanceRepo struct {
	records []types.Attendance
	nextSeq int
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, record types.Attendance) (types.Attendance, error) {
	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID && existing.Date == record.Date {
			return types.Attendance{}, store.ErrConflict
		}
	}
	r.nextSeq++
	record.ID = fmt.Sprintf("att-%d", r.nextSeq)
	r.records = append(r.records, record)
	return record, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (types.Attendance, error) {
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return types.Attendance{}, store.ErrNotFound
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter store.AttendanceFilter) ([]types.Attendance, error) {
	matched := []types.Attendance{}
	for _, record := range r.records {
		if filter.EmployeeID != "" && record.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.StartDate != "" && filter.EndDate != "" {
			if record.Date < filter.StartDate || record.Date > filter.EndDate {
				continue
			}
		}
		matched = append(matched, record)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })
	return matched, nil
}

func (r *fakeAttendanceRepo) ListDateRange(ctx context.Context, start, end string) ([]types.Attendance, error) {
	matched := []types.Attendance{}
	for _, record := range r.records {
		if record.Date >= start && record.Date <= end {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (r *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id, checkOut string, hours *float64) error {
	for i, record := range r.records {
		if record.ID == id {
			record.CheckOut = checkOut
			record.WorkingHours = hours
			r.records[i] = record
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *fakeAttendanceRepo) CountByDateStatus(ctx context.Context, date, status string) (int, error) {
	count := 0
	for _, record := range r.records {
		if record.Date == date && record.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeLeaveRepo is an in-memory LeaveRepository.
type fakeLeaveRepo struct {
	leaves  []types.Leave
	nextSeq int
}

func (r *fakeLeaveRepo) Create(ctx context.Context, leave types.Leave) (types.Leave, error) {
	r.nextSeq++
	leave.ID = fmt.Sprintf("leave-%d", r.nextSeq)
	r.leaves = append(r.leaves, leave)
	return leave, nil
}

func (r *fakeLeaveRepo) List(ctx context.Context, filter store.LeaveFilter) ([]types.Leave, error) {
	matched := []types.Leave{}
	for _, leave := range r.leaves {
		if filter.EmployeeID != "" && leave.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && leave.Status != filter.Status {
			continue
		}
		matched = append(matched, leave)
	}
	return matched, nil
}

func (r *fakeLeaveRepo) RecentPending(ctx context.Context, limit int) ([]types.Leave, error) {
	pending, err := r.List(ctx, store.LeaveFilter{Status: types.LeaveStatusPending})
	if err != nil {
		return nil, err
	}
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (r *fakeLeaveRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	count := 0
	for _, leave := range r.leaves {
		if leave.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeLeaveRepo) Review(ctx context.Context, id, status, reviewedBy string) error {
	for i, leave := range r.leaves {
		if leave.ID == id {
			now := time.Now().UTC()
			leave.Status = status
			leave.ReviewedBy = reviewedBy
			leave.ReviewedAt = &now
			r.leaves[i] = leave
			return nil
		}
	}
	return store.ErrNotFound
}
