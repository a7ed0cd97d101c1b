package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/staffdesk/apiserver/internal/db"
	"github.com/staffdesk/apiserver/types"
)

// LeaveFilter narrows leave listings.
type LeaveFilter struct {
	EmployeeID string
	Status     string
}

// LeaveRepository handles persistence for leave requests.
type LeaveRepository struct {
	leaves *mongo.Collection
}

func NewLeaveRepository(m *db.Mongo) *LeaveRepository {
	return &LeaveRepository{leaves: m.Collection("leaves")}
}

func (r *LeaveRepository) Create(ctx context.Context, leave types.Leave) (types.Leave, error) {
	leave.ID = uuid.NewString()
	leave.AppliedAt = time.Now().UTC()

	if _, err := r.leaves.InsertOne(ctx, leave); err != nil {
		return types.Leave{}, fmt.Errorf("insert leave: %w", err)
	}
	return leave, nil
}

// List returns leave requests matching the filter, most recently applied
// first.
func (r *LeaveRepository) List(ctx context.Context, filter LeaveFilter) ([]types.Leave, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "applied_at", Value: -1}}).
		SetLimit(listLimit)
	cursor, err := r.leaves.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find leaves: %w", err)
	}
	leaves := []types.Leave{}
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("decode leaves: %w", err)
	}
	return leaves, nil
}

// RecentPending returns the most recently applied pending requests, capped
// at limit.
func (r *LeaveRepository) RecentPending(ctx context.Context, limit int) ([]types.Leave, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "applied_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.leaves.Find(ctx, bson.M{"status": types.LeaveStatusPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("find leaves: %w", err)
	}
	leaves := []types.Leave{}
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("decode leaves: %w", err)
	}
	return leaves, nil
}

// CountByStatus counts leave requests in the given status.
func (r *LeaveRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	count, err := r.leaves.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count leaves: %w", err)
	}
	return int(count), nil
}

// Review stamps a status transition with the reviewer's name and a
// timestamp. There is no terminal-state guard: reviewing an already-reviewed
// request overwrites the previous decision. ErrNotFound is reported when no
// document was modified.
func (r *LeaveRepository) Review(ctx context.Context, id, status, reviewedBy string) error {
	now := time.Now().UTC()
	result, err := r.leaves.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"status":      status,
			"reviewed_by": reviewedBy,
			"reviewed_at": now,
		}},
	)
	if err != nil {
		return fmt.Errorf("update leave: %w", err)
	}
	if result.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}
