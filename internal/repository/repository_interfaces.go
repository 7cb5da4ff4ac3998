// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// CartsRepositoryInterface defines the interface for cart persistence operations.
type CartsRepositoryInterface interface {
	Save(ctx context.Context, cart *model.Cart) error
	Get(ctx context.Context, id string) (*model.Cart, error)
	Delete(ctx context.Context, id string) error
}

// OrdersRepositoryInterface defines the interface for order persistence operations.
type OrdersRepositoryInterface interface {
	Create(ctx context.Context, order *model.Order) error
	Get(ctx context.Context, id string) (*model.Order, error)
	ListByBuyer(ctx context.Context, buyerEmail string, limit int) ([]model.Order, error)
}

// PreferencesRepositoryInterface defines the interface for preference slot operations.
type PreferencesRepositoryInterface interface {
	SetTheme(ctx context.Context, ownerID, theme string) error
	GetTheme(ctx context.Context, ownerID string) (string, error)
}

// NotificationsRepositoryInterface defines the interface for notification log operations.
type NotificationsRepositoryInterface interface {
	Create(ctx context.Context, doc *NotificationDocument) error
	Query(ctx context.Context, opts NotificationQueryOptions) ([]*NotificationDocument, error)
	Count(ctx context.Context, opts NotificationQueryOptions) (int64, error)
}
