package commands

import (
	"context"
	"log/slog"
	"time"

	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/ports"
	"laundrytrack/internal/metrics"
)

// publishStatusChanged emits an event for an already committed status change.
// Publishing is best effort: failures are logged with the correlation ID and
// counted, but never fail the command that already committed.
func publishStatusChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	correlationID string,
	o *order.Order,
) {
	if publisher == nil {
		return
	}

	event := ports.OrderStatusChangedEvent{
		CorrelationID: correlationID,
		OrderID:       o.ID().String(),
		OwnerID:       o.OwnerID().String(),
		Status:        o.Status().String(),
		OccurredAt:    lastTransitionTime(o),
	}
	if tag := o.Tag(); tag != nil {
		event.NfcTag = tag.String()
	}

	if err := publisher.PublishStatusChanged(ctx, event); err != nil {
		metrics.EventPublishFailuresTotal.Inc()
		if logger != nil {
			logger.Error("failed to publish order status change",
				"correlation_id", correlationID,
				"order_id", event.OrderID,
				"status", event.Status,
				"error", err)
		}
	}
}

func lastTransitionTime(o *order.Order) time.Time {
	log := o.StatusLog()
	if len(log) == 0 {
		return time.Now().UTC()
	}
	return log[len(log)-1].Timestamp
}
