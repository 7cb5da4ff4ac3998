// Package main is the entry point for the storefront-service application.
//
// @title           SmartReturn Storefront API
// @version         1.0.0
// @description     Storefront API with a product catalog, carts, an advisory
//
//	return-risk gate in front of every add to cart, and checkout with
//	optional split payments.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/smartreturn/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        products
// @tag.description Product catalog browsing and search
//
// @tag.name        carts
// @tag.description Cart lifecycle and line management
//
// @tag.name        risk
// @tag.description Advisory return-risk analysis gating adds to cart
//
// @tag.name        checkout
// @tag.description Cart settlement with optional split payments
//
// @tag.name        preferences
// @tag.description Per-owner UI preferences
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/smartreturn/storefront-service/docs" // swagger docs

	"github.com/smartreturn/storefront-service/config"
	"github.com/smartreturn/storefront-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Shutdown(context.Background())

	server := app.NewServer(application.Router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
