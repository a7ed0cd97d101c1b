package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/staffdesk/apiserver/internal/db"
	"github.com/staffdesk/apiserver/types"
)

const listLimit = 1000

// EmployeeRepository handles persistence for employee records.
type EmployeeRepository struct {
	employees *mongo.Collection
}

func NewEmployeeRepository(m *db.Mongo) *EmployeeRepository {
	return &EmployeeRepository{employees: m.Collection("employees")}
}

// Create inserts a new employee. A duplicate badge number surfaces as
// ErrConflict via the unique index on employee_id.
func (r *EmployeeRepository) Create(ctx context.Context, employee types.Employee) (types.Employee, error) {
	employee.ID = uuid.NewString()
	employee.CreatedAt = time.Now().UTC()

	if _, err := r.employees.InsertOne(ctx, employee); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return types.Employee{}, ErrConflict
		}
		return types.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	return employee, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (types.Employee, error) {
	var employee types.Employee
	err := r.employees.FindOne(ctx, bson.M{"id": id}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Employee{}, ErrNotFound
		}
		return types.Employee{}, fmt.Errorf("find employee: %w", err)
	}
	return employee, nil
}

// GetByEmployeeID looks up an employee by its business key.
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (types.Employee, error) {
	var employee types.Employee
	err := r.employees.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Employee{}, ErrNotFound
		}
		return types.Employee{}, fmt.Errorf("find employee: %w", err)
	}
	return employee, nil
}

// ListActive returns all employees whose status is active.
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]types.Employee, error) {
	cursor, err := r.employees.Find(ctx, bson.M{"status": types.EmployeeStatusActive})
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	employees := []types.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

// Update overwrites the mutable fields of an employee and returns the stored
// document as it reads after the write.
func (r *EmployeeRepository) Update(ctx context.Context, id string, patch types.EmployeeUpsert) (types.Employee, error) {
	update := bson.M{"$set": bson.M{
		"employee_id":       patch.EmployeeID,
		"full_name":         patch.FullName,
		"email":             patch.Email,
		"phone":             patch.Phone,
		"department":        patch.Department,
		"designation":       patch.Designation,
		"date_of_joining":   patch.DateOfJoining,
		"salary":            patch.Salary,
		"address":           patch.Address,
		"emergency_contact": patch.EmergencyContact,
		"blood_group":       patch.BloodGroup,
		"status":            patch.Status,
	}}

	result, err := r.employees.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return types.Employee{}, ErrConflict
		}
		return types.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	if result.MatchedCount == 0 {
		return types.Employee{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Deactivate soft-deletes an employee. It reports ErrNotFound when no
// document was modified, which includes employees that are already inactive.
func (r *EmployeeRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.employees.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": types.EmployeeStatusInactive}},
	)
	if err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}
	if result.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountActive counts employees whose status is active.
func (r *EmployeeRepository) CountActive(ctx context.Context) (int, error) {
	count, err := r.employees.CountDocuments(ctx, bson.M{"status": types.EmployeeStatusActive})
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return int(count), nil
}

// CountByDepartment groups active employees by department.
func (r *EmployeeRepository) CountByDepartment(ctx context.Context) ([]types.DepartmentCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": types.EmployeeStatusActive}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$department",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.employees.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate employees: %w", err)
	}
	counts := []types.DepartmentCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode department counts: %w", err)
	}
	return counts, nil
}
