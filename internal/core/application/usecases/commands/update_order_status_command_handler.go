package commands

import (
	"context"
	"log/slog"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/core/ports"
	"laundrytrack/internal/metrics"
)

// UpdateOrderStatusCommandHandler moves an order along the washing pipeline.
//
// Transitions are checked against the configured TransitionPolicy. Whether
// non-staff users may update statuses is controlled by requireStaff; the
// historical behavior is to let any authenticated user do it.
type UpdateOrderStatusCommandHandler struct {
	uowFactory   OrderUoWFactory
	policy       order.TransitionPolicy
	requireStaff bool
	publisher    ports.OrderEventPublisher
	logger       *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
	requireStaff bool,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		policy:       policy,
		requireStaff: requireStaff,
		publisher:    publisher,
		logger:       logger,
	}
}

// Handle processes the status update command.
// Loads the order, applies the transition and optional relocation, and
// persists the result atomically. Emits a status change event after commit.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.AuthorizeStatusUpdate(cmd.CallerRole(), h.requireStaff, "update order status"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Target(), h.policy); err != nil {
		return err
	}

	if location := cmd.ShelfLocation(); location != "" {
		if err = aggregate.RelocateTo(location); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(cmd.Target().String()).Inc()
	publishStatusChanged(ctx, h.publisher, h.logger, kernel.NewUUID().String(), aggregate)

	return nil
}
