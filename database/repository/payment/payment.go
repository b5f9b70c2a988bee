package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"facilityai/models"
)

type PaymentLinkRepository interface {
	Create(ctx context.Context, link models.PaymentLink) (string, error)
	GetByToken(ctx context.Context, token string) (*models.PaymentLink, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a PaymentLinkRepository over the given database.
func NewMongoPaymentRepo(db *mongo.Database) PaymentLinkRepository {
	return &mongoPaymentRepo{coll: db.Collection("paymentlink")}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, link models.PaymentLink) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	link.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, link)
	if err != nil {
		return "", fmt.Errorf("failed to insert payment link: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected type for inserted ID")
	}
	return oid.Hex(), nil
}

func (r *mongoPaymentRepo) GetByToken(ctx context.Context, token string) (*models.PaymentLink, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var link models.PaymentLink
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&link); err != nil {
		return nil, err
	}
	return &link, nil
}
