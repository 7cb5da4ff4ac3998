package service

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/smartreturn/storefront-service/internal/domain/model"
	"github.com/smartreturn/storefront-service/internal/metrics"
	"github.com/smartreturn/storefront-service/internal/repository"
)

// CartService provides cart-related operations.
//
// Carts are held in memory as the source of truth and written through to
// the repository best-effort. A failed write degrades durability, never the
// request; a failed read hydration degrades to an empty cart.
type CartService interface {
	Create(ctx context.Context) (*model.Cart, error)
	Get(ctx context.Context, cartID string) (*model.Cart, error)
	AddItem(ctx context.Context, cartID string, item model.Item) (*model.Cart, error)
	SetQuantity(ctx context.Context, cartID, itemID string, qty int) (*model.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*model.Cart, error)
	Clear(ctx context.Context, cartID string) (*model.Cart, error)
}

// CartServiceImpl implements CartService.
type CartServiceImpl struct {
	mu       sync.Mutex
	carts    map[string]*model.Cart
	repo     repository.CartsRepositoryInterface
	notifier Notifier
}

// NewCartService creates a new cart service. The repository may be nil when
// the service runs without a database.
func NewCartService(repo repository.CartsRepositoryInterface, notifier Notifier) *CartServiceImpl {
	return &CartServiceImpl{
		carts:    make(map[string]*model.Cart),
		repo:     repo,
		notifier: notifier,
	}
}

// Create creates a new empty cart with a server-issued ULID.
func (s *CartServiceImpl) Create(ctx context.Context) (*model.Cart, error) {
	now := time.Now()
	cart := &model.Cart{
		ID:        ulid.Make().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.carts[cart.ID] = cart
	snapshot := cloneCart(cart)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	metrics.RecordCartOperation("create", "ok")
	return snapshot, nil
}

// Get returns a snapshot of the cart. Carts not held in memory are hydrated
// from the repository; a hydration failure yields a fresh empty cart under
// the same ID rather than an error.
func (s *CartServiceImpl) Get(ctx context.Context, cartID string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.locked(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return cloneCart(cart), nil
}

// AddItem adds one unit of the item, merging into an existing line.
func (s *CartServiceImpl) AddItem(ctx context.Context, cartID string, item model.Item) (*model.Cart, error) {
	return s.mutate(ctx, cartID, "add_item", func(cart *model.Cart) {
		cart.AddOrIncrement(item)
	})
}

// SetQuantity sets a line to an exact quantity; a quantity of zero or below
// removes the line. Unknown item IDs are a no-op.
func (s *CartServiceImpl) SetQuantity(ctx context.Context, cartID, itemID string, qty int) (*model.Cart, error) {
	return s.mutate(ctx, cartID, "set_quantity", func(cart *model.Cart) {
		cart.SetQuantity(itemID, qty)
	})
}

// RemoveItem removes the line for the item if present.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, cartID, itemID string) (*model.Cart, error) {
	return s.mutate(ctx, cartID, "remove_item", func(cart *model.Cart) {
		cart.Remove(itemID)
	})
}

// Clear empties the cart.
func (s *CartServiceImpl) Clear(ctx context.Context, cartID string) (*model.Cart, error) {
	return s.mutate(ctx, cartID, "clear", func(cart *model.Cart) {
		cart.Clear()
	})
}

// mutate applies fn to the cart under the lock, bumps UpdatedAt, and writes
// the result through to the repository.
func (s *CartServiceImpl) mutate(ctx context.Context, cartID, operation string, fn func(*model.Cart)) (*model.Cart, error) {
	s.mu.Lock()
	cart, err := s.locked(ctx, cartID)
	if err != nil {
		s.mu.Unlock()
		metrics.RecordCartOperation(operation, "not_found")
		return nil, err
	}

	fn(cart)
	cart.UpdatedAt = time.Now()
	snapshot := cloneCart(cart)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	metrics.RecordCartOperation(operation, "ok")
	return snapshot, nil
}

// locked returns the in-memory cart, hydrating from the repository on a
// miss. Callers must hold s.mu.
func (s *CartServiceImpl) locked(ctx context.Context, cartID string) (*model.Cart, error) {
	if cart, ok := s.carts[cartID]; ok {
		return cart, nil
	}
	if s.repo == nil {
		return nil, ErrCartNotFound
	}

	cart, err := s.repo.Get(ctx, cartID)
	if err == repository.ErrNotFound {
		return nil, ErrCartNotFound
	}
	if err != nil {
		// Unreadable state degrades to an empty cart instead of failing the
		// request. The warning tells the user their saved cart was lost.
		metrics.RecordPersistenceFailure("read")
		now := time.Now()
		cart = &model.Cart{ID: cartID, CreatedAt: now, UpdatedAt: now}
		s.carts[cartID] = cart
		if s.notifier != nil {
			s.notifier.Notify(ctx, model.Notification{
				Level:   model.NotifyWarn,
				Event:   "cart.restore_failed",
				Message: "Saved cart could not be restored; starting with an empty cart",
				CartID:  cartID,
			})
		}
		return cart, nil
	}

	s.carts[cartID] = cart
	return cart, nil
}

// persist writes a cart snapshot through to the repository best-effort.
func (s *CartServiceImpl) persist(ctx context.Context, cart *model.Cart) {
	if s.repo == nil {
		return
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		metrics.RecordPersistenceFailure("write")
		if s.notifier != nil {
			s.notifier.Notify(ctx, model.Notification{
				Level:   model.NotifyWarn,
				Event:   "cart.persist_failed",
				Message: "Cart changes could not be saved; they will be lost on restart",
				CartID:  cart.ID,
			})
		}
	}
}

// Forget drops the cart from memory and from the repository. Used after a
// settled checkout once the cart has been cleared.
func (s *CartServiceImpl) Forget(ctx context.Context, cartID string) {
	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Delete(ctx, cartID); err != nil {
			metrics.RecordPersistenceFailure("write")
		}
	}
}

// cloneCart returns a deep-enough copy: the lines slice is duplicated so
// callers can read the snapshot without holding the service lock.
func cloneCart(cart *model.Cart) *model.Cart {
	out := *cart
	out.Lines = make([]model.CartLine, len(cart.Lines))
	copy(out.Lines, cart.Lines)
	return &out
}
