// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/smartreturn/storefront-service/internal/circuitbreaker"
	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// CartsRepositoryWithCircuitBreaker wraps CartsRepository with circuit breaker protection.
type CartsRepositoryWithCircuitBreaker struct {
	repo           *CartsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartsRepositoryWithCircuitBreaker(repo *CartsRepository, cb *circuitbreaker.CircuitBreaker) *CartsRepositoryWithCircuitBreaker {
	return &CartsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Save upserts a cart with circuit breaker protection. Carts live in memory
// first, so an open circuit surfaces as a write failure the caller degrades on.
func (r *CartsRepositoryWithCircuitBreaker) Save(ctx context.Context, cart *model.Cart) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, cart)
	})
}

// Get retrieves a cart with circuit breaker protection.
func (r *CartsRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.Cart, error) {
	var result *model.Cart
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Delete removes a cart with circuit breaker protection.
func (r *CartsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// NotificationsRepositoryWithCircuitBreaker wraps NotificationsRepository with circuit breaker protection.
type NotificationsRepositoryWithCircuitBreaker struct {
	repo           *NotificationsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewNotificationsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewNotificationsRepositoryWithCircuitBreaker(repo *NotificationsRepository, cb *circuitbreaker.CircuitBreaker) *NotificationsRepositoryWithCircuitBreaker {
	return &NotificationsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a notification with circuit breaker protection.
// If circuit is open, silently fails (the notification log is non-critical).
func (r *NotificationsRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *NotificationDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (the notification log is non-critical)
		return nil
	}
	return err
}

// Query retrieves notifications with circuit breaker protection.
func (r *NotificationsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts NotificationQueryOptions) ([]*NotificationDocument, error) {
	var result []*NotificationDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of notifications with circuit breaker protection.
func (r *NotificationsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts NotificationQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *NotificationsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
