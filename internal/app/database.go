// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/config"
	"github.com/smartreturn/storefront-service/internal/circuitbreaker"
	"github.com/smartreturn/storefront-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	CartsRepo            repository.CartsRepositoryInterface
	OrdersRepo           repository.OrdersRepositoryInterface
	PreferencesRepo      repository.PreferencesRepositoryInterface
	NotificationsRepo    repository.NotificationsRepositoryInterface
	CartsCircuitBreaker  *circuitbreaker.CircuitBreaker
	NotifsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// storefront repositories. Returns nil if the database is disabled or the
// connection fails; the service then runs on in-memory state only.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// TTL indexes for abandoned carts and old notifications
	cartsTTLDays := int(cfg.CartsTTL.Hours() / 24)
	if err := db.SetCartsTTL(context.Background(), cartsTTLDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set carts TTL index (may already exist)")
	}
	notifsTTLDays := int(cfg.NotificationsTTL.Hours() / 24)
	if err := db.SetNotificationsTTL(context.Background(), notifsTTLDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set notifications TTL index (may already exist)")
	}

	// Circuit breakers guard the two collections on the request path
	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})
	notifsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-notifications",
	})

	cartsRepo := repository.NewCartsRepositoryWithCircuitBreaker(repository.NewCartsRepository(db), cartsCB)
	notifsRepo := repository.NewNotificationsRepositoryWithCircuitBreaker(repository.NewNotificationsRepository(db), notifsCB)

	return &DatabaseComponents{
		DB:                   db,
		CartsRepo:            cartsRepo,
		OrdersRepo:           repository.NewOrdersRepository(db),
		PreferencesRepo:      repository.NewPreferencesRepository(db),
		NotificationsRepo:    notifsRepo,
		CartsCircuitBreaker:  cartsCB,
		NotifsCircuitBreaker: notifsCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), repository.DefaultMongoConfig().ConnectTimeout)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
