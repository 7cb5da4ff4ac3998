// Package app provides service initialization.
package app

import (
	"context"
	"fmt"

	"github.com/smartreturn/storefront-service/config"
	"github.com/smartreturn/storefront-service/internal/messaging"
	"github.com/smartreturn/storefront-service/internal/repository"
	"github.com/smartreturn/storefront-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Catalog     service.Catalog
	Carts       service.CartService
	RiskGate    service.RiskGateService
	Checkout    service.CheckoutService
	Preferences service.PreferencesService
	Invoices    service.InvoiceGenerator

	notifier *service.AsyncNotifier
}

// InitializeServices initializes business logic services. Repository
// dependencies come from dbComponents and may be absent; every service
// degrades to in-memory state.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents, publisher messaging.EventPublisher) (*ServiceComponents, error) {
	catalog, err := service.NewStaticCatalog(context.Background(), nil)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	repos := flattenRepos(dbComponents)

	// Notification delivery never blocks the request path
	notifier := service.NewAsyncNotifier(
		service.NewEventNotifier(repos.notifications),
		service.DefaultAsyncNotifierConfig(),
	)

	carts := service.NewCartService(repos.carts, notifier)

	riskGate := service.NewRiskGateService(catalog, carts, notifier,
		service.WithAnalysisDelay(cfg.Risk.AnalysisDelay),
		service.WithGateTTL(cfg.Risk.GateTTL),
	)

	settler := service.NewSimulatedSettler(
		service.WithSettleDelay(cfg.Checkout.SettleDelay),
		service.WithFailureRate(cfg.Checkout.SettleFailureRate),
	)
	invites := service.NewInviteIssuer(cfg.Checkout.InviteSecret, cfg.Checkout.InviteTTL)

	checkout := service.NewCheckoutService(carts, settler, invites, publisher, repos.orders, notifier)

	return &ServiceComponents{
		Catalog:     catalog,
		Carts:       carts,
		RiskGate:    riskGate,
		Checkout:    checkout,
		Preferences: service.NewPreferencesService(repos.preferences),
		Invoices:    service.NewInvoiceGenerator(cfg.Checkout.MerchantName),
		notifier:    notifier,
	}, nil
}

// Close stops background workers owned by the services.
func (s *ServiceComponents) Close() {
	s.RiskGate.Close()
	if s.notifier != nil {
		s.notifier.Stop()
	}
}

// repoSet flattens the optional database components into nilable
// repository handles.
type repoSet struct {
	carts         repository.CartsRepositoryInterface
	orders        repository.OrdersRepositoryInterface
	preferences   repository.PreferencesRepositoryInterface
	notifications repository.NotificationsRepositoryInterface
}

func flattenRepos(db *DatabaseComponents) repoSet {
	if db == nil {
		return repoSet{}
	}
	return repoSet{
		carts:         db.CartsRepo,
		orders:        db.OrdersRepo,
		preferences:   db.PreferencesRepo,
		notifications: db.NotificationsRepo,
	}
}
