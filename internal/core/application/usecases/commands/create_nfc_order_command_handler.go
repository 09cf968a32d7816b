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

// CreateNfcOrderCommandHandler handles creation of orders bound to an NFC tag.
//
// The handler acquires a tag from the pool before touching the database. If
// the pool is exhausted the command fails without any persistence. If any
// later step fails, the acquired tag is released back so the pool and the
// database never disagree about which tags are in use.
type CreateNfcOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tagPool    *services.TagPool
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateNfcOrderCommandHandler creates a handler for NFC order creation.
func NewCreateNfcOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tagPool *services.TagPool,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateNfcOrderCommandHandler {
	return CreateNfcOrderCommandHandler{
		uowFactory: uowFactory,
		tagPool:    tagPool,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the NFC order creation command and returns the tag that
// was bound to the order. Acquires a tag, persists the order with the tag
// bound, and compensates by releasing the tag when persistence fails.
func (h *CreateNfcOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateNfcOrderCommand,
) (kernel.TagID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TagID{}, err
	}

	tag, err := h.tagPool.Acquire()
	if err != nil {
		return kernel.TagID{}, err
	}
	metrics.TagsAcquiredTotal.Inc()
	metrics.TagPoolAvailable.Set(float64(h.tagPool.AvailableCount()))

	aggregate, err := h.persistWithTag(ctx, cmd, tag)
	if err != nil {
		h.releaseBack(tag)
		return kernel.TagID{}, err
	}

	metrics.OrdersCreatedTotal.Inc()
	publishStatusChanged(ctx, h.publisher, h.logger, kernel.NewUUID().String(), aggregate)

	return tag, nil
}

func (h *CreateNfcOrderCommandHandler) persistWithTag(
	ctx context.Context,
	cmd CreateNfcOrderCommand,
	tag kernel.TagID,
) (*order.Order, error) {
	aggregate, err := order.NewOrderWithTag(
		cmd.OrderID(),
		cmd.OwnerID(),
		cmd.ShelfLocation(),
		tag,
		cmd.InitialStatus(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *CreateNfcOrderCommandHandler) releaseBack(tag kernel.TagID) {
	if err := h.tagPool.Release(tag); err != nil {
		if h.logger != nil {
			h.logger.Error("failed to release tag after aborted order creation",
				"tag", tag.String(),
				"error", err)
		}
		return
	}
	metrics.TagsReleasedTotal.Inc()
	metrics.TagPoolAvailable.Set(float64(h.tagPool.AvailableCount()))
}
