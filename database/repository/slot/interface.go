package slotRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"facilityai/models"
)

// ErrSlotTaken is returned by DecrementRemaining when the guarded update
// matched nothing: the slot was filled (or blocked) between the availability
// check and the decrement.
var ErrSlotTaken = errors.New("slot no longer open or out of capacity")

// WindowQuery filters the open-slot search.
type WindowQuery struct {
	ServiceID string
	StaffID   string
	From      time.Time
	To        time.Time
	Limit     int64
}

type ScheduleSlotRepository interface {
	Create(ctx context.Context, slot models.ScheduleSlot) (string, error)
	GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error)
	// FindOpenInWindow returns open slots whose start_time falls in [From, To).
	FindOpenInWindow(ctx context.Context, q WindowQuery) ([]models.ScheduleSlot, error)
	// FindByExactWindow returns at most one slot matching start and end
	// exactly, or (nil, nil) when none exists. Deliberately ignores service
	// and staff; see the booking service for the rationale.
	FindByExactWindow(ctx context.Context, start, end time.Time) (*models.ScheduleSlot, error)
	// DecrementRemaining atomically takes one capacity unit from an open slot
	// with remaining > 0, flipping status to booked when it reaches zero.
	DecrementRemaining(ctx context.Context, id primitive.ObjectID) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a ScheduleSlotRepository over the given database.
func NewMongoSlotRepo(db *mongo.Database) ScheduleSlotRepository {
	return &mongoSlotRepo{coll: db.Collection("scheduleslot")}
}
