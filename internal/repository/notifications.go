// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationDocument represents a notification event document in MongoDB.
// This is the repository-level structure that maps directly to MongoDB.
type NotificationDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Level     string             `bson:"level" json:"level"`
	Event     string             `bson:"event" json:"event"`
	Message   string             `bson:"message" json:"message"`
	CartID    string             `bson:"cart_id,omitempty" json:"cart_id,omitempty"`
	RequestID string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
}

// NotificationsRepository provides methods for notification log operations.
type NotificationsRepository struct {
	collection *mongo.Collection
}

// NewNotificationsRepository creates a new notifications repository.
func NewNotificationsRepository(db *MongoDB) *NotificationsRepository {
	return &NotificationsRepository{
		collection: db.Notifications,
	}
}

// Create inserts a new notification document.
func (r *NotificationsRepository) Create(ctx context.Context, doc *NotificationDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// NotificationQueryOptions provides options for querying notifications.
type NotificationQueryOptions struct {
	CartID    string
	Level     string
	Event     string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

func (opts NotificationQueryOptions) filter() bson.M {
	filter := bson.M{}

	if opts.CartID != "" {
		filter["cart_id"] = opts.CartID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Event != "" {
		filter["event"] = opts.Event
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}

	return filter
}

// Query queries notification documents with filters.
func (r *NotificationsRepository) Query(ctx context.Context, opts NotificationQueryOptions) ([]*NotificationDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*NotificationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Count returns the count of notification documents matching the filter.
func (r *NotificationsRepository) Count(ctx context.Context, opts NotificationQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
