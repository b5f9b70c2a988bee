package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordRepository is the generic document-store adapter: insert/query over
// named collections, with store-generated identifiers rendered as strings.
type RecordRepository interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	GetByID(ctx context.Context, collection, id string) (bson.M, error)
	Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	ListCollections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	DatabaseName() string
}

type mongoRecordRepo struct {
	db *mongo.Database
}

// NewMongoRecordRepo returns a RecordRepository over the given database.
func NewMongoRecordRepo(db *mongo.Database) RecordRepository {
	return &mongoRecordRepo{db: db}
}

func (r *mongoRecordRepo) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected type for inserted ID")
	}
	return oid.Hex(), nil
}

func (r *mongoRecordRepo) GetByID(ctx context.Context, collection, id string) (bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record id %q: %w", id, err)
	}

	var doc bson.M
	if err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, err
	}
	normalizeID(doc)
	return doc, nil
}

func (r *mongoRecordRepo) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding %s records: %w", collection, err)
	}
	for _, doc := range docs {
		normalizeID(doc)
	}
	return docs, nil
}

func (r *mongoRecordRepo) ListCollections(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.db.ListCollectionNames(ctx, bson.M{})
}

func (r *mongoRecordRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.db.Client().Ping(ctx, nil)
}

func (r *mongoRecordRepo) DatabaseName() string {
	return r.db.Name()
}

// normalizeID replaces a raw ObjectID with its hex string so store-native
// identifier types never reach a response body.
func normalizeID(doc bson.M) {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
}
