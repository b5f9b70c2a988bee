package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"facilityai/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot models.ScheduleSlot) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, slot)
	if err != nil {
		return "", fmt.Errorf("failed to insert slot: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected type for inserted ID")
	}
	return oid.Hex(), nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid slot id %q: %w", id, err)
	}

	var slot models.ScheduleSlot
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoSlotRepo) FindOpenInWindow(ctx context.Context, q WindowQuery) ([]models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":     models.SlotStatusOpen,
		"start_time": bson.M{"$gte": q.From, "$lt": q.To},
	}
	if q.ServiceID != "" {
		filter["service_id"] = q.ServiceID
	}
	if q.StaffID != "" {
		filter["staff_id"] = q.StaffID
	}

	opts := options.Find().SetLimit(q.Limit).SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.ScheduleSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) FindByExactWindow(ctx context.Context, start, end time.Time) (*models.ScheduleSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"start_time": start, "end_time": end}
	var slot models.ScheduleSlot
	err := r.coll.FindOne(ctx, filter).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) DecrementRemaining(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The filter doubles as the no-oversell guard: only an open slot with
	// capacity left can match, so remaining never goes negative.
	filter := bson.M{
		"_id":       id,
		"status":    models.SlotStatusOpen,
		"remaining": bson.M{"$gt": 0},
	}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "remaining", Value: bson.D{{Key: "$add", Value: bson.A{"$remaining", -1}}}},
			{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$lte", Value: bson.A{"$remaining", 1}}}},
				{Key: "then", Value: models.SlotStatusBooked},
				{Key: "else", Value: models.SlotStatusOpen},
			}}}},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update slot capacity: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotTaken
	}
	return nil
}
