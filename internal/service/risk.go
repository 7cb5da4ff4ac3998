package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/singleflight"

	"github.com/smartreturn/storefront-service/internal/domain/model"
	"github.com/smartreturn/storefront-service/internal/metrics"
)

const maxAlternatives = 3

// Gate is one open risk-gate instance: a resolved analysis waiting for the
// user to confirm, pick an alternative, or cancel.
//
// @Description Resolved risk analysis awaiting confirmation
type Gate struct {
	// ID is the server-issued gate identifier (ULID).
	ID string `json:"id"`
	// CartID is the cart the confirmed item will be added to.
	CartID string `json:"cart_id"`
	// ItemID is the analyzed item.
	ItemID string `json:"item_id"`
	// Analysis is the advisory analysis result.
	Analysis model.RiskAnalysis `json:"analysis"`
	// CreatedAt is when the analysis resolved.
	CreatedAt time.Time `json:"created_at"`

	// item is the analyzed item snapshot used on confirmation.
	item model.Item
} // @name RiskGate

// RiskGateService runs the advisory return-risk gate that fronts every add
// to cart. The gate never blocks a purchase: any resolved analysis can be
// confirmed regardless of tier.
type RiskGateService interface {
	// Open analyzes the item and registers a gate. Opening a new gate for a
	// cart supersedes any gate already open for it.
	Open(ctx context.Context, cartID, itemID string) (*Gate, error)
	// Confirm closes the gate and adds the chosen item to the cart. An empty
	// itemID confirms the analyzed item; otherwise itemID must name the
	// analyzed item or one of the listed alternatives.
	Confirm(ctx context.Context, gateID, itemID string) (*model.Cart, error)
	// Cancel discards the gate without touching the cart.
	Cancel(gateID string) error
	// Close stops the expiry sweeper.
	Close()
}

// RiskGateServiceImpl implements RiskGateService.
type RiskGateServiceImpl struct {
	catalog  Catalog
	carts    CartService
	notifier Notifier
	delay    time.Duration
	ttl      time.Duration

	// group deduplicates concurrent analyses of the same item so a burst of
	// opens pays the simulated latency once.
	group singleflight.Group

	mu     sync.Mutex
	gates  map[string]*Gate
	byCart map[string]string

	stop     chan struct{}
	stopOnce sync.Once
}

// RiskGateOption configures the risk gate service.
type RiskGateOption func(*RiskGateServiceImpl)

// WithAnalysisDelay overrides the simulated analysis latency.
func WithAnalysisDelay(d time.Duration) RiskGateOption {
	return func(s *RiskGateServiceImpl) { s.delay = d }
}

// WithGateTTL overrides how long an unconfirmed gate stays open.
func WithGateTTL(ttl time.Duration) RiskGateOption {
	return func(s *RiskGateServiceImpl) { s.ttl = ttl }
}

// NewRiskGateService creates a new risk gate service and starts its expiry
// sweeper.
func NewRiskGateService(catalog Catalog, carts CartService, notifier Notifier, opts ...RiskGateOption) *RiskGateServiceImpl {
	s := &RiskGateServiceImpl{
		catalog:  catalog,
		carts:    carts,
		notifier: notifier,
		delay:    1500 * time.Millisecond,
		ttl:      5 * time.Minute,
		gates:    make(map[string]*Gate),
		byCart:   make(map[string]string),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.sweepExpired()
	return s
}

// Open analyzes the item and registers a gate for the cart.
func (s *RiskGateServiceImpl) Open(ctx context.Context, cartID, itemID string) (*Gate, error) {
	if _, err := s.carts.Get(ctx, cartID); err != nil {
		return nil, err
	}
	item, ok := s.catalog.Get(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	start := time.Now()
	v, err, _ := s.group.Do(itemID, func() (interface{}, error) {
		if err := sleepContext(ctx, s.delay); err != nil {
			return nil, err
		}
		return s.analyze(item), nil
	})
	if err != nil {
		return nil, err
	}
	analysis := v.(model.RiskAnalysis)
	metrics.RecordRiskAnalysis(string(analysis.OverallRisk), time.Since(start))

	gate := &Gate{
		ID:        ulid.Make().String(),
		CartID:    cartID,
		ItemID:    itemID,
		Analysis:  analysis,
		CreatedAt: time.Now(),
		item:      item,
	}

	s.mu.Lock()
	if prevID, ok := s.byCart[cartID]; ok {
		delete(s.gates, prevID)
		metrics.ActiveGates.Dec()
	}
	s.gates[gate.ID] = gate
	s.byCart[cartID] = gate.ID
	metrics.ActiveGates.Inc()
	s.mu.Unlock()

	return gate, nil
}

// Confirm closes the gate and adds the chosen item to the cart.
func (s *RiskGateServiceImpl) Confirm(ctx context.Context, gateID, itemID string) (*model.Cart, error) {
	s.mu.Lock()
	gate, ok := s.gates[gateID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrGateNotFound
	}

	item, err := gate.chosenItem(itemID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.removeLocked(gate)
	s.mu.Unlock()

	cart, err := s.carts.AddItem(ctx, gate.CartID, item)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, model.Notification{
			Level:   model.NotifyInfo,
			Event:   "cart.item_added",
			Message: item.Name + " added to cart",
			CartID:  gate.CartID,
		})
	}
	return cart, nil
}

// Cancel discards the gate.
func (s *RiskGateServiceImpl) Cancel(gateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gate, ok := s.gates[gateID]
	if !ok {
		return ErrGateNotFound
	}
	s.removeLocked(gate)
	return nil
}

// Close stops the expiry sweeper.
func (s *RiskGateServiceImpl) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// chosenItem resolves the confirmation choice against the gate: the
// analyzed item by default, or one of the listed alternatives.
func (g *Gate) chosenItem(itemID string) (model.Item, error) {
	if itemID == "" || itemID == g.ItemID {
		return g.item, nil
	}
	for _, alt := range g.Analysis.Alternatives {
		if alt.ID == itemID {
			return alt, nil
		}
	}
	return model.Item{}, ErrItemNotFound
}

// analyze builds the advisory analysis for an item.
func (s *RiskGateServiceImpl) analyze(item model.Item) model.RiskAnalysis {
	score := model.RiskScore(item.ReturnRate)
	tier := model.TierForScore(score)

	return model.RiskAnalysis{
		OverallRisk:     tier,
		RiskScore:       score,
		Factors:         model.FactorBreakdown(item.RiskFactors),
		Recommendations: model.RecommendationsForTier(tier),
		Alternatives:    s.alternatives(item),
	}
}

// alternatives returns up to three same-category items sorted by ascending
// return rate, excluding the analyzed item.
func (s *RiskGateServiceImpl) alternatives(item model.Item) []model.Item {
	var alts []model.Item
	for _, candidate := range s.catalog.List() {
		if candidate.ID != item.ID && candidate.Category == item.Category {
			alts = append(alts, candidate)
		}
	}
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].ReturnRate < alts[j].ReturnRate
	})
	if len(alts) > maxAlternatives {
		alts = alts[:maxAlternatives]
	}
	return alts
}

// removeLocked drops the gate from both indexes. Callers must hold s.mu.
func (s *RiskGateServiceImpl) removeLocked(gate *Gate) {
	delete(s.gates, gate.ID)
	if s.byCart[gate.CartID] == gate.ID {
		delete(s.byCart, gate.CartID)
	}
	metrics.ActiveGates.Dec()
}

// sweepExpired drops gates left unresolved past the TTL.
func (s *RiskGateServiceImpl) sweepExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for _, gate := range s.gates {
				if now.Sub(gate.CreatedAt) > s.ttl {
					s.removeLocked(gate)
				}
			}
			s.mu.Unlock()
		}
	}
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
