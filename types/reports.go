package types

// DepartmentCount is one bucket of the per-department employee aggregation.
type DepartmentCount struct {
	Department string `json:"_id" bson:"_id"`
	Count      int    `json:"count" bson:"count"`
}

// DashboardStats is the payload of the dashboard endpoint.
type DashboardStats struct {
	TotalEmployees  int               `json:"total_employees"`
	PresentToday    int               `json:"present_today"`
	PendingLeaves   int               `json:"pending_leaves"`
	RecentLeaves    []Leave           `json:"recent_leaves"`
	DepartmentStats []DepartmentCount `json:"department_stats"`
	AttendanceRate  float64           `json:"attendance_rate"`
}

// EmployeeAttendanceSummary is one employee's row in the monthly report.
type EmployeeAttendanceSummary struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	HalfDay      int     `json:"half_day"`
	Leave        int     `json:"leave"`
	TotalHours   float64 `json:"total_hours"`
}

// AttendanceReport aggregates one calendar month of attendance per employee.
type AttendanceReport struct {
	Month string                      `json:"month"`
	Year  string                      `json:"year"`
	Data  []EmployeeAttendanceSummary `json:"data"`
}
