package commands

import (
	"context"

	"laundrytrack/internal/core/domain/model/shelf"
	"laundrytrack/internal/core/domain/services"
)

// CreateShelfCommandHandler handles provisioning of new shelves.
// Duplicate shelf codes surface as ObjectAlreadyExistsError from the repository.
type CreateShelfCommandHandler struct {
	uowFactory ShelfUoWFactory
}

// NewCreateShelfCommandHandler creates a handler for shelf provisioning.
func NewCreateShelfCommandHandler(uowFactory ShelfUoWFactory) CreateShelfCommandHandler {
	return CreateShelfCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shelf provisioning command.
// Requires an administrator role. New shelves start unoccupied.
func (h *CreateShelfCommandHandler) Handle(ctx context.Context, cmd CreateShelfCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.AuthorizeAdmin(cmd.CallerRole(), "create shelf"); err != nil {
		return err
	}

	aggregate, err := shelf.NewShelf(cmd.Code(), cmd.Stage())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShelfRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
