// Package messaging publishes settlement events to RabbitMQ so downstream
// consumers (fulfillment, email) can react to settled checkouts.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// OrderSettledEvent is the message emitted after a successful settlement.
type OrderSettledEvent struct {
	OrderID       string             `json:"order_id"`
	CartID        string             `json:"cart_id"`
	Mode          model.CheckoutMode `json:"mode"`
	TotalCents    int64              `json:"total_cents"`
	BuyerEmail    string             `json:"buyer_email"`
	CoBuyerEmail  string             `json:"co_buyer_email,omitempty"`
	BuyerCents    int64              `json:"buyer_cents"`
	CoBuyerCents  int64              `json:"co_buyer_cents"`
	TotalQuantity int                `json:"total_quantity"`
	SettledAt     time.Time          `json:"settled_at"`
}

// EventPublisher defines the interface for publishing settlement events.
type EventPublisher interface {
	PublishOrderSettled(ctx context.Context, event OrderSettledEvent) error
	Close() error
}

// AMQPPublisher publishes events to a RabbitMQ queue.
type AMQPPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

// NewAMQPPublisher dials the broker and declares the durable event queue.
func NewAMQPPublisher(url, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &AMQPPublisher{
		conn:      conn,
		channel:   ch,
		queueName: queueName,
	}, nil
}

// PublishOrderSettled publishes the event as a persistent JSON message.
func (p *AMQPPublisher) PublishOrderSettled(ctx context.Context, event OrderSettledEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Debug().
		Str("order_id", event.OrderID).
		Str("queue", p.queueName).
		Msg("Published order settled event")
	return nil
}

// Close closes the channel and connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher discards all events. Used when the broker is disabled or
// unreachable so checkout keeps working without messaging.
type NopPublisher struct{}

// PublishOrderSettled discards the event.
func (NopPublisher) PublishOrderSettled(_ context.Context, _ OrderSettledEvent) error {
	return nil
}

// Close is a no-op.
func (NopPublisher) Close() error { return nil }
