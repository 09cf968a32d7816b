package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/core/ports"
	"laundrytrack/internal/metrics"
)

// ErrTagReleaseFailed indicates the order was completed and committed but the
// follow-up tag release did not go through. The order stays completed; the
// reconciliation job will return the tag to the pool later.
var ErrTagReleaseFailed = errors.New("order completed but tag release failed")

// CompleteOrderCommandHandler closes out orders that were picked up.
//
// Completion is a two step operation: the status change commits first, then
// the NFC tag is released back to the pool. The steps share a correlation ID
// so a failed second step can be traced and repaired. A failure of the second
// step is reported as ErrTagReleaseFailed, never as a failed completion.
type CompleteOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	tagPool      *services.TagPool
	policy       order.TransitionPolicy
	requireStaff bool
	publisher    ports.OrderEventPublisher
	logger       *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tagPool *services.TagPool,
	policy order.TransitionPolicy,
	requireStaff bool,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory:   uowFactory,
		tagPool:      tagPool,
		policy:       policy,
		requireStaff: requireStaff,
		publisher:    publisher,
		logger:       logger,
	}
}

// Handle processes the completion command.
// A second completion of the same order fails with ErrOrderAlreadyCompleted
// from the aggregate, before any state is touched.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.AuthorizeStatusUpdate(cmd.CallerRole(), h.requireStaff, "complete order"); err != nil {
		return err
	}

	correlationID := kernel.NewUUID().String()

	aggregate, err := h.commitCompletion(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	metrics.OrdersCompletedTotal.Inc()
	metrics.StatusTransitionsTotal.WithLabelValues(order.StatusCompleted.String()).Inc()

	if err = h.releaseTag(aggregate, correlationID); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, correlationID, aggregate)

	return nil
}

func (h *CompleteOrderCommandHandler) commitCompletion(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = aggregate.Complete(h.policy); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *CompleteOrderCommandHandler) releaseTag(aggregate *order.Order, correlationID string) error {
	tag := aggregate.Tag()
	if tag == nil {
		return nil
	}

	if err := h.tagPool.Release(*tag); err != nil {
		metrics.TagReleaseFailuresTotal.Inc()
		if h.logger != nil {
			h.logger.Error("tag release failed after completion",
				"correlation_id", correlationID,
				"order_id", aggregate.ID().String(),
				"tag", tag.String(),
				"error", err)
		}
		return fmt.Errorf("%w: correlation %s: %w", ErrTagReleaseFailed, correlationID, err)
	}

	metrics.TagsReleasedTotal.Inc()
	metrics.TagPoolAvailable.Set(float64(h.tagPool.AvailableCount()))

	return nil
}
