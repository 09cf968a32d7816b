package commands

import (
	"context"

	"laundrytrack/internal/core/domain/services"
)

// UpdateShelfCommandHandler handles administrative shelf corrections.
type UpdateShelfCommandHandler struct {
	uowFactory ShelfUoWFactory
}

// NewUpdateShelfCommandHandler creates a handler for shelf updates.
func NewUpdateShelfCommandHandler(uowFactory ShelfUoWFactory) UpdateShelfCommandHandler {
	return UpdateShelfCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shelf update command.
// Requires an administrator role. Assigning an occupant replaces whatever
// order currently sits on the shelf; this is a correction tool, not the
// regular occupancy flow.
func (h *UpdateShelfCommandHandler) Handle(ctx context.Context, cmd UpdateShelfCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.AuthorizeAdmin(cmd.CallerRole(), "update shelf"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shelfRepo := uow.ShelfRepository()
	aggregate, err := shelfRepo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if stage := cmd.Stage(); stage != nil {
		if err = aggregate.Restage(*stage); err != nil {
			return err
		}
	}

	if cmd.ClearOrder() {
		aggregate.Clear()
	}

	if orderID := cmd.CurrentOrder(); orderID != nil {
		aggregate.Clear()
		if err = aggregate.Assign(*orderID); err != nil {
			return err
		}
	}

	if err = shelfRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
