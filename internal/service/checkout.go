package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/internal/domain/model"
	"github.com/smartreturn/storefront-service/internal/messaging"
	"github.com/smartreturn/storefront-service/internal/metrics"
	"github.com/smartreturn/storefront-service/internal/repository"
)

// CheckoutInput is the validated input for one checkout attempt. Handlers
// validate field presence before building it; the service only derives
// amounts and settles.
type CheckoutInput struct {
	CartID       string
	BuyerName    string
	BuyerEmail   string
	Mode         model.CheckoutMode
	CoBuyerEmail string
	// BuyerPercent is the buyer's share for split mode. Zero means the
	// default; out-of-range values are clamped, never rejected.
	BuyerPercent int
}

// CheckoutService settles carts into orders.
type CheckoutService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*model.Order, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	carts     CartService
	settler   Settler
	invites   InviteIssuer
	publisher messaging.EventPublisher
	orders    repository.OrdersRepositoryInterface
	notifier  Notifier

	// inFlight latches carts with a running settlement so a second submit
	// cannot double-charge.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCheckoutService creates a new checkout service. The orders repository
// and publisher may be nil; settled orders are then only logged.
func NewCheckoutService(
	carts CartService,
	settler Settler,
	invites InviteIssuer,
	publisher messaging.EventPublisher,
	orders repository.OrdersRepositoryInterface,
	notifier Notifier,
) *CheckoutServiceImpl {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &CheckoutServiceImpl{
		carts:     carts,
		settler:   settler,
		invites:   invites,
		publisher: publisher,
		orders:    orders,
		notifier:  notifier,
		inFlight:  make(map[string]struct{}),
	}
}

// Checkout settles the cart. On success the cart is cleared and an order is
// recorded; on settlement failure the cart is left untouched so the user
// can retry.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, in CheckoutInput) (*model.Order, error) {
	if err := s.acquire(in.CartID); err != nil {
		return nil, err
	}
	defer s.release(in.CartID)

	cart, err := s.carts.Get(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	total := cart.TotalPrice()
	percent := s.buyerPercent(in)
	split := model.ComputeSplit(total, in.Mode, percent)

	order := &model.Order{
		ID:           ulid.Make().String(),
		CartID:       cart.ID,
		Lines:        cart.Lines,
		Total:        total,
		Mode:         in.Mode,
		BuyerName:    in.BuyerName,
		BuyerEmail:   in.BuyerEmail,
		CoBuyerEmail: in.CoBuyerEmail,
		SplitPercent: percent,
		Split:        split,
		CreatedAt:    time.Now(),
	}

	start := time.Now()
	err = s.settler.Settle(ctx, SettlementRequest{
		OrderID: order.ID,
		CartID:  cart.ID,
		Mode:    in.Mode,
		Amount:  split.BuyerAmount,
	})
	if err != nil {
		metrics.RecordSettlement(string(in.Mode), "failed", time.Since(start))
		if s.notifier != nil {
			s.notifier.Notify(ctx, model.Notification{
				Level:   model.NotifyError,
				Event:   "checkout.failed",
				Message: "Something went wrong. Please try again.",
				CartID:  cart.ID,
			})
		}
		return nil, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}
	metrics.RecordSettlement(string(in.Mode), "ok", time.Since(start))

	if in.Mode == model.ModeSplit && s.invites != nil {
		token, inviteErr := s.invites.Issue(order.ID, in.CoBuyerEmail, split.CoBuyerAmount)
		if inviteErr != nil {
			log.Warn().Err(inviteErr).Str("order_id", order.ID).Msg("Failed to issue split-payment invite")
		} else {
			order.InviteToken = token
		}
	}

	if s.orders != nil {
		if repoErr := s.orders.Create(ctx, order); repoErr != nil {
			metrics.RecordPersistenceFailure("write")
			log.Warn().Err(repoErr).Str("order_id", order.ID).Msg("Failed to persist order")
		}
	}

	s.publish(ctx, order, cart.TotalQuantity())

	if _, clearErr := s.carts.Clear(ctx, cart.ID); clearErr != nil {
		log.Warn().Err(clearErr).Str("cart_id", cart.ID).Msg("Failed to clear cart after settlement")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, model.Notification{
			Level:   model.NotifyInfo,
			Event:   "checkout.settled",
			Message: s.successMessage(in),
			CartID:  cart.ID,
		})
	}

	return order, nil
}

// buyerPercent normalizes the buyer's share: solo mode always pays in full,
// split mode clamps into range with 50 as the omitted-field default.
func (s *CheckoutServiceImpl) buyerPercent(in CheckoutInput) int {
	if in.Mode != model.ModeSplit {
		return 100
	}
	if in.BuyerPercent == 0 {
		return model.DefaultSplitPercent
	}
	return model.ClampSplitPercent(in.BuyerPercent)
}

func (s *CheckoutServiceImpl) successMessage(in CheckoutInput) string {
	if in.Mode == model.ModeSplit {
		return "Order placed! Split payment invitation sent to " + in.CoBuyerEmail
	}
	return "Your order has been placed successfully!"
}

func (s *CheckoutServiceImpl) publish(ctx context.Context, order *model.Order, quantity int) {
	event := messaging.OrderSettledEvent{
		OrderID:       order.ID,
		CartID:        order.CartID,
		Mode:          order.Mode,
		TotalCents:    int64(order.Total),
		BuyerEmail:    order.BuyerEmail,
		CoBuyerEmail:  order.CoBuyerEmail,
		BuyerCents:    int64(order.Split.BuyerAmount),
		CoBuyerCents:  int64(order.Split.CoBuyerAmount),
		TotalQuantity: quantity,
		SettledAt:     order.CreatedAt,
	}
	if err := s.publisher.PublishOrderSettled(ctx, event); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("Failed to publish order settled event")
	}
}

func (s *CheckoutServiceImpl) acquire(cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[cartID]; busy {
		return ErrCheckoutInFlight
	}
	s.inFlight[cartID] = struct{}{}
	return nil
}

func (s *CheckoutServiceImpl) release(cartID string) {
	s.mu.Lock()
	delete(s.inFlight, cartID)
	s.mu.Unlock()
}
