package types

import "time"

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Employee is a personnel record. Employees are soft-deleted by flipping
// Status to inactive; documents are never physically removed.
type Employee struct {
	// ID is the unique identifier of the record.
	ID string `json:"id" bson:"id"`

	// EmployeeID is the unique business key (badge number), distinct from ID.
	EmployeeID string `json:"employee_id" bson:"employee_id"`

	FullName         string  `json:"full_name" bson:"full_name"`
	Email            string  `json:"email" bson:"email"`
	Phone            string  `json:"phone" bson:"phone"`
	Department       string  `json:"department" bson:"department"`
	Designation      string  `json:"designation" bson:"designation"`
	DateOfJoining    string  `json:"date_of_joining" bson:"date_of_joining"`
	Salary           float64 `json:"salary" bson:"salary"`
	Address          string  `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact string  `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty"`
	BloodGroup       string  `json:"blood_group,omitempty" bson:"blood_group,omitempty"`

	// Status is either active or inactive.
	Status string `json:"status" bson:"status"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// EmployeeUpsert is the payload for creating or fully updating an employee.
type EmployeeUpsert struct {
	EmployeeID       string  `json:"employee_id" validate:"required"`
	FullName         string  `json:"full_name" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required"`
	Department       string  `json:"department" validate:"required"`
	Designation      string  `json:"designation" validate:"required"`
	DateOfJoining    string  `json:"date_of_joining" validate:"required"`
	Salary           float64 `json:"salary"`
	Address          string  `json:"address"`
	EmergencyContact string  `json:"emergency_contact"`
	BloodGroup       string  `json:"blood_group"`
	Status           string  `json:"status" validate:"omitempty,oneof=active inactive"`
}
