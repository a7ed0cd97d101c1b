package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/apiserver/internal/auth"
	"github.com/staffdesk/apiserver/internal/services"
	"github.com/staffdesk/apiserver/internal/store"
	"github.com/staffdesk/apiserver/types"
)

type fakeUserRepo struct {
	byID    map[string]types.User
	nextSeq int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]types.User{}}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (types.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return types.User{}, store.ErrConflict
		}
	}
	r.nextSeq++
	user.ID = fmt.Sprintf("user-%d", r.nextSeq)
	user.CreatedAt = time.Now().UTC()
	r.byID[user.ID] = user
	return user, nil
}

type fakeEmployeeRepo struct {
	byID    map[string]types.Employee
	nextSeq int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]types.Employee{}}
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
	return counts, nil
}

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
		matched = append(matched, record)
	}
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

// testEnv wires every route over in-memory repositories, mirroring the
// production router assembly in internal/server.
type testEnv struct {
	router      *chi.Mux
	credentials *auth.Credentials
	users       *fakeUserRepo
	employees   *fakeEmployeeRepo
	attendance  *fakeAttendanceRepo
	leaves      *fakeLeaveRepo
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	employees := newFakeEmployeeRepo()
	attendance := &fakeAttendanceRepo{}
	leaves := &fakeLeaveRepo{}

	userService := services.NewUserService(users)
	employeeService := services.NewEmployeeService(employees)
	attendanceService := services.NewAttendanceService(attendance, employees)
	leaveService := services.NewLeaveService(leaves, employees)
	dashboardService := services.NewDashboardService(employees, attendance, leaves)

	credentials := auth.NewCredentials("test-secret")
	requireAuth := RequireAuth(credentials, userService)
	dashboardHandler := NewDashboardHandler(dashboardService, attendanceService)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			AuthRouter(r, userService, credentials, requireAuth)
		})
		r.Route("/employees", func(r chi.Router) {
			EmployeeRouter(r, employeeService, requireAuth)
		})
		r.Route("/attendance", func(r chi.Router) {
			AttendanceRouter(r, attendanceService, requireAuth)
		})
		r.Route("/leaves", func(r chi.Router) {
			LeaveRouter(r, leaveService, requireAuth)
		})
		r.Route("/dashboard", func(r chi.Router) {
			DashboardRouter(r, dashboardHandler, requireAuth)
		})
		r.Route("/reports", func(r chi.Router) {
			ReportsRouter(r, dashboardHandler, requireAuth)
		})
	})

	return &testEnv{
		router:      router,
		credentials: credentials,
		users:       users,
		employees:   employees,
		attendance:  attendance,
		leaves:      leaves,
	}
}

// seedUser registers an account directly against the repository and returns
// a valid token for it.
func (env *testEnv) seedUser(role types.Role) (types.User, string, error) {
	hashed, err := env.credentials.HashPassword("password1")
	if err != nil {
		return types.User{}, "", err
	}
	user, err := env.users.Create(context.Background(), types.User{
		Email:        fmt.Sprintf("%s-%d@example.com", role, env.users.nextSeq),
		FullName:     fmt.Sprintf("%s user", role),
		Role:         role,
		PasswordHash: hashed,
	})
	if err != nil {
		return types.User{}, "", err
	}
	token, err := env.credentials.IssueToken(user)
	if err != nil {
		return types.User{}, "", err
	}
	return user, token, nil
}

func (env *testEnv) seedEmployee(employeeID, name string) (types.Employee, error) {
	return env.employees.Create(context.Background(), types.Employee{
		EmployeeID:    employeeID,
		FullName:      name,
		Email:         employeeID + "@example.com",
		Phone:         "555-0100",
		Department:    "Engineering",
		Designation:   "Engineer",
		DateOfJoining: "2024-01-15",
		Salary:        90000,
		Status:        types.EmployeeStatusActive,
	})
}
