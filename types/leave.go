package types

import "time"

const (
	LeaveTypeSick     = "sick"
	LeaveTypeCasual   = "casual"
	LeaveTypeVacation = "vacation"

	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Leave is a leave request. It is created pending and moves to approved or
// rejected through a reviewer action, which stamps ReviewedBy/ReviewedAt.
type Leave struct {
	ID           string     `json:"id" bson:"id"`
	EmployeeID   string     `json:"employee_id" bson:"employee_id"`
	EmployeeName string     `json:"employee_name" bson:"employee_name"`
	LeaveType    string     `json:"leave_type" bson:"leave_type"`
	StartDate    string     `json:"start_date" bson:"start_date"`
	EndDate      string     `json:"end_date" bson:"end_date"`
	Reason       string     `json:"reason" bson:"reason"`
	DaysCount    int        `json:"days_count" bson:"days_count"`
	Status       string     `json:"status" bson:"status"`
	AppliedAt    time.Time  `json:"applied_at" bson:"applied_at"`
	ReviewedBy   string     `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
}

// LeaveCreate is the payload for applying for leave.
type LeaveCreate struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	LeaveType  string `json:"leave_type" validate:"required,oneof=sick casual vacation"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required"`
	DaysCount  int    `json:"days_count" validate:"required,gt=0"`
}
