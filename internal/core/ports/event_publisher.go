package ports

import (
	"context"
	"time"
)

// OrderStatusChangedEvent describes a single order status transition for
// downstream consumers (notification senders, analytics).
//
// CorrelationID ties the event to the command invocation that produced it, so
// a reconciliation process can match a completed order against the tag-release
// step that should have followed it.
type OrderStatusChangedEvent struct {
	CorrelationID string    `json:"correlation_id"`
	OrderID       string    `json:"order_id"`
	OwnerID       string    `json:"owner_id"`
	Status        string    `json:"status"`
	NfcTag        string    `json:"nfc_tag,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order lifecycle events to the message broker.
//
// Publishing is best effort from the domain's point of view: a failed publish
// is logged by the caller but never fails the already-committed command.
type OrderEventPublisher interface {
	// PublishStatusChanged emits an event for a committed status transition.
	PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
