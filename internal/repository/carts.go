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

// CartsRepository provides methods for cart persistence at the repository level.
type CartsRepository struct {
	collection *mongo.Collection
}

// NewCartsRepository creates a new carts repository.
func NewCartsRepository(db *MongoDB) *CartsRepository {
	return &CartsRepository{
		collection: db.Carts,
	}
}

// Save upserts the cart document keyed by its ID.
func (r *CartsRepository) Save(ctx context.Context, cart *model.Cart) error {
	if cart.UpdatedAt.IsZero() {
		cart.UpdatedAt = time.Now()
	}

	filter := bson.M{"_id": cart.ID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, cart, opts)
	return err
}

// Get retrieves a cart by ID. Returns ErrNotFound if no document exists.
func (r *CartsRepository) Get(ctx context.Context, id string) (*model.Cart, error) {
	var cart model.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Delete removes a cart document. Deleting a missing cart is not an error.
func (r *CartsRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
