package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/staffdesk/apiserver/internal/db"
	"github.com/staffdesk/apiserver/types"
)

// AttendanceFilter narrows attendance listings. StartDate and EndDate only
// apply when both are set, matching dates inclusively as ISO strings.
type AttendanceFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

// AttendanceRepository handles persistence for attendance records.
type AttendanceRepository struct {
	attendance *mongo.Collection
}

func NewAttendanceRepository(m *db.Mongo) *AttendanceRepository {
	return &AttendanceRepository{attendance: m.Collection("attendance")}
}

// Create inserts a new attendance record. A second record for the same
// (employee_id, date) pair surfaces as ErrConflict via the unique compound
// index, so the check is race-free even across concurrent requests.
func (r *AttendanceRepository) Create(ctx context.Context, record types.Attendance) (types.Attendance, error) {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	if _, err := r.attendance.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return types.Attendance{}, ErrConflict
		}
		return types.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}
	return record, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (types.Attendance, error) {
	var record types.Attendance
	err := r.attendance.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Attendance{}, ErrNotFound
		}
		return types.Attendance{}, fmt.Errorf("find attendance: %w", err)
	}
	return record, nil
}

// List returns attendance records matching the filter, newest date first.
func (r *AttendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]types.Attendance, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if filter.StartDate != "" && filter.EndDate != "" {
		query["date"] = bson.M{"$gte": filter.StartDate, "$lte": filter.EndDate}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(listLimit)
	cursor, err := r.attendance.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	records := []types.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return records, nil
}

// ListDateRange returns all records with an inclusive ISO date between start
// and end, unsorted. Used by the monthly report.
func (r *AttendanceRepository) ListDateRange(ctx context.Context, start, end string) ([]types.Attendance, error) {
	cursor, err := r.attendance.Find(ctx, bson.M{
		"date": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	records := []types.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return records, nil
}

// SetCheckOut records a check-out time and the recomputed working hours on
// an existing record. Repeated calls overwrite the previous values. A nil
// hours value is stored as an explicit null.
func (r *AttendanceRepository) SetCheckOut(ctx context.Context, id, checkOut string, hours *float64) error {
	result, err := r.attendance.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"check_out": checkOut, "working_hours": hours}},
	)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByDateStatus counts records for a given day with a given status.
func (r *AttendanceRepository) CountByDateStatus(ctx context.Context, date, status string) (int, error) {
	count, err := r.attendance.CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return int(count), nil
}
