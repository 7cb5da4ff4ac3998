// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// OrdersRepository provides methods for order persistence at the repository level.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Create inserts a new order document.
func (r *OrdersRepository) Create(ctx context.Context, order *model.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// Get retrieves an order by ID. Returns ErrNotFound if no document exists.
func (r *OrdersRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListByBuyer returns the most recent orders for a buyer email.
func (r *OrdersRepository) ListByBuyer(ctx context.Context, buyerEmail string, limit int) ([]model.Order, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"buyer_email": buyerEmail}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
