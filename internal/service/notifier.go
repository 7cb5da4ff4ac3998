package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/internal/domain/model"
	"github.com/smartreturn/storefront-service/internal/repository"
)

// Notifier delivers user-facing outcome notifications. Implementations must
// never fail the calling operation; delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification)
}

// EventNotifier writes notifications to the structured log and, when a
// repository is configured, to the notification log collection.
type EventNotifier struct {
	repo repository.NotificationsRepositoryInterface
}

// NewEventNotifier creates a notifier. A nil repository is allowed; events
// are then only logged.
func NewEventNotifier(repo repository.NotificationsRepositoryInterface) *EventNotifier {
	return &EventNotifier{repo: repo}
}

// Notify logs the notification and persists it best-effort.
func (n *EventNotifier) Notify(ctx context.Context, notif model.Notification) {
	if notif.Timestamp.IsZero() {
		notif.Timestamp = time.Now()
	}

	event := log.WithLevel(levelFor(notif.Level)).
		Str("event", notif.Event).
		Str("cart_id", notif.CartID)
	if notif.RequestID != "" {
		event = event.Str("request_id", notif.RequestID)
	}
	event.Msg(notif.Message)

	if n.repo == nil {
		return
	}

	doc := &repository.NotificationDocument{
		Timestamp: notif.Timestamp,
		Level:     string(notif.Level),
		Event:     notif.Event,
		Message:   notif.Message,
		CartID:    notif.CartID,
		RequestID: notif.RequestID,
	}
	if err := n.repo.Create(ctx, doc); err != nil {
		log.Warn().Err(err).Str("event", notif.Event).Msg("Failed to persist notification")
	}
}

func levelFor(level model.NotificationLevel) zerolog.Level {
	switch level {
	case model.NotifyWarn:
		return zerolog.WarnLevel
	case model.NotifyError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
