package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// SettlementRequest carries what the payment processor needs for one charge.
type SettlementRequest struct {
	OrderID string
	CartID  string
	Mode    model.CheckoutMode
	// Amount is the buyer's charge in cents. In split mode the co-buyer pays
	// later through the invite link, so only the buyer's share settles here.
	Amount model.Cents
}

// Settler executes the payment settlement for a checkout. A returned error
// means the charge did not happen and the checkout may be retried.
type Settler interface {
	Settle(ctx context.Context, req SettlementRequest) error
}

// SimulatedSettler stands in for a real payment processor. It waits a
// configurable latency and can inject failures for testing the retry path.
type SimulatedSettler struct {
	delay       time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// SettlerOption configures the simulated settler.
type SettlerOption func(*SimulatedSettler)

// WithSettleDelay overrides the simulated processing latency.
func WithSettleDelay(d time.Duration) SettlerOption {
	return func(s *SimulatedSettler) { s.delay = d }
}

// WithFailureRate makes a fraction of settlements fail, in [0, 1].
func WithFailureRate(rate float64) SettlerOption {
	return func(s *SimulatedSettler) { s.failureRate = rate }
}

// NewSimulatedSettler creates a simulated settler.
func NewSimulatedSettler(opts ...SettlerOption) *SimulatedSettler {
	s := &SimulatedSettler{
		delay: 2000 * time.Millisecond,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settle waits the simulated latency, then succeeds or fails per the
// configured failure rate.
func (s *SimulatedSettler) Settle(ctx context.Context, _ SettlementRequest) error {
	if err := sleepContext(ctx, s.delay); err != nil {
		return err
	}

	if s.failureRate > 0 {
		s.mu.Lock()
		failed := s.rng.Float64() < s.failureRate
		s.mu.Unlock()
		if failed {
			return errors.New("payment processor declined")
		}
	}
	return nil
}
