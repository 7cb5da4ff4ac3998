// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PreferenceDocument represents a per-owner preference slot in MongoDB.
type PreferenceDocument struct {
	OwnerID   string    `bson:"_id" json:"owner_id"`
	Theme     string    `bson:"theme" json:"theme"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PreferencesRepository provides methods for preference slot operations.
type PreferencesRepository struct {
	collection *mongo.Collection
}

// NewPreferencesRepository creates a new preferences repository.
func NewPreferencesRepository(db *MongoDB) *PreferencesRepository {
	return &PreferencesRepository{
		collection: db.Preferences,
	}
}

// SetTheme upserts the theme slot for an owner.
func (r *PreferencesRepository) SetTheme(ctx context.Context, ownerID, theme string) error {
	filter := bson.M{"_id": ownerID}
	update := bson.M{"$set": bson.M{"theme": theme, "updated_at": time.Now()}}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetTheme returns the stored theme for an owner. Returns ErrNotFound when
// the owner has no stored preference.
func (r *PreferencesRepository) GetTheme(ctx context.Context, ownerID string) (string, error) {
	var doc PreferenceDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotFound
		}
		return "", err
	}
	return doc.Theme, nil
}
