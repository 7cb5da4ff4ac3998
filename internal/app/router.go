// Package app provides router configuration.
package app

import (
	"context"

	"github.com/smartreturn/storefront-service/config"
	"github.com/smartreturn/storefront-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(
		services.Catalog,
		services.Carts,
		services.RiskGate,
		services.Checkout,
		services.Preferences,
		services.Invoices,
	)

	healthHandler := http.NewHealthHandler()

	// Register database probes for readiness
	if dbComponents != nil {
		healthHandler.RegisterChecker("database", mongoChecker{dbComponents})
		if dbComponents.CartsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_carts", dbComponents.CartsCircuitBreaker)
		}
		if dbComponents.NotifsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_notifications", dbComponents.NotifsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// mongoChecker adapts the MongoDB ping to the health checker interface.
type mongoChecker struct {
	db *DatabaseComponents
}

func (c mongoChecker) Check() error {
	return c.db.DB.HealthCheck(context.Background())
}
