package commands

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	// ErrCompletionViaStatusUpdate rejects plain status updates that target the
	// completed status. Completion releases the NFC tag and must go through the
	// dedicated completion command.
	ErrCompletionViaStatusUpdate = errors.New(
		"completed status must be set via the complete order operation",
	)
)

// UpdateOrderStatusCommand represents a request to move an order along the
// washing pipeline and optionally relocate it to another shelf.
//
// An empty shelf location leaves the current location untouched.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	target        order.Status
	shelfLocation string
	callerRole    kernel.Role

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates the order ID, the target status and the caller's role. The target
// may not be the completed status.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	shelfLocation string,
	callerRole kernel.Role,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		shelfLocation: shelfLocation,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
		statusCommand.setCallerRole(callerRole),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the status the order should move to.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// ShelfLocation returns the new shelf code, or empty to keep the current one.
func (c UpdateOrderStatusCommand) ShelfLocation() string {
	return c.shelfLocation
}

// CallerRole returns the role of the user issuing the update.
func (c UpdateOrderStatusCommand) CallerRole() kernel.Role {
	return c.callerRole
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == order.StatusCompleted {
		return ErrCompletionViaStatusUpdate
	}

	c.target = target
	return nil
}

func (c *UpdateOrderStatusCommand) setCallerRole(callerRole kernel.Role) error {
	if err := callerRole.Validate(); err != nil {
		return err
	}

	c.callerRole = callerRole
	return nil
}
