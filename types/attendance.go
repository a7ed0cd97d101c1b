package types

import "time"

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusHalfDay = "half-day"
	AttendanceStatusLeave   = "leave"
)

// Attendance is a single day's record for one employee. There is at most one
// record per (employee_id, date) pair. WorkingHours is derived from the
// check-in/check-out pair and is absent when either time is missing or
// unparseable.
type Attendance struct {
	ID           string   `json:"id" bson:"id"`
	EmployeeID   string   `json:"employee_id" bson:"employee_id"`
	EmployeeName string   `json:"employee_name" bson:"employee_name"`
	Date         string   `json:"date" bson:"date"`
	CheckIn      string   `json:"check_in" bson:"check_in"`
	CheckOut     string   `json:"check_out,omitempty" bson:"check_out,omitempty"`
	Status       string   `json:"status" bson:"status"`
	WorkingHours *float64 `json:"working_hours" bson:"working_hours,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// AttendanceCreate is the payload for marking attendance.
type AttendanceCreate struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status" validate:"required,oneof=present absent half-day leave"`
}
