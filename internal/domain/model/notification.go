package model

import "time"

// NotificationLevel is the severity of a user-facing outcome notification.
type NotificationLevel string

const (
	// NotifyInfo is a routine success outcome.
	NotifyInfo NotificationLevel = "info"
	// NotifyWarn is a degraded but recovered outcome.
	NotifyWarn NotificationLevel = "warn"
	// NotifyError is a failed, user-visible outcome.
	NotifyError NotificationLevel = "error"
)

// Notification is one user-facing outcome report. The core emits these
// through the Notifier port; the delivery channel (toast, log, dialog) is
// an external collaborator.
type Notification struct {
	// Level is the notification severity.
	Level NotificationLevel `json:"level" bson:"level"`
	// Event names the outcome, e.g. "cart.item_added" or "checkout.failed".
	Event string `json:"event" bson:"event"`
	// Message is the human-readable outcome text.
	Message string `json:"message" bson:"message"`
	// CartID scopes the notification to a cart when applicable.
	CartID string `json:"cart_id,omitempty" bson:"cart_id,omitempty"`
	// RequestID ties the notification to the originating request.
	RequestID string `json:"request_id,omitempty" bson:"request_id,omitempty"`
	// Timestamp is when the outcome occurred.
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
