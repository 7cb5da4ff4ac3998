// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/config"
	"github.com/smartreturn/storefront-service/internal/http"
)

// App holds the wired application and the resources it must release on
// shutdown.
type App struct {
	Router   *gin.Engine
	shutdown []func()
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	app := &App{}

	// Database components degrade to nil when MongoDB is disabled or down
	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		app.onShutdown(dbComponents.Close)
	}

	// Event broker degrades to a no-op publisher
	publisher := InitializeBroker(cfg.Broker)
	app.onShutdown(func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close event publisher")
		}
	})

	serviceComponents, err := InitializeServices(cfg, dbComponents, publisher)
	if err != nil {
		return nil, err
	}
	app.onShutdown(serviceComponents.Close)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)
	app.Router = http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	return app, nil
}

// onShutdown registers a cleanup function run on Shutdown, last first.
func (a *App) onShutdown(fn func()) {
	a.shutdown = append(a.shutdown, fn)
}

// Shutdown releases application resources in reverse initialization order.
func (a *App) Shutdown(_ context.Context) {
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		a.shutdown[i]()
	}
}
