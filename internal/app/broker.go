// Package app provides event broker initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/config"
	"github.com/smartreturn/storefront-service/internal/messaging"
)

// InitializeBroker connects to RabbitMQ for settlement events. Returns a
// no-op publisher if the broker is disabled or the connection fails; the
// service runs fine without it.
func InitializeBroker(cfg config.BrokerConfig) messaging.EventPublisher {
	if !cfg.Enabled {
		return messaging.NopPublisher{}
	}

	publisher, err := messaging.NewAMQPPublisher(cfg.URL, cfg.QueueName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to RabbitMQ - continuing without event publishing")
		return messaging.NopPublisher{}
	}

	log.Info().Str("queue", cfg.QueueName).Msg("Connected to RabbitMQ")
	return publisher
}
