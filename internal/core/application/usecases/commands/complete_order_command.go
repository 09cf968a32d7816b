package commands

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to close out a picked-up order.
// Completion is terminal: it moves the order to the completed status and
// returns its NFC tag, if any, to the allocation pool.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	callerRole kernel.Role

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
// Validates the order ID and the caller's role.
func NewCompleteOrderCommand(orderID kernel.UUID, callerRole kernel.Role) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setCallerRole(callerRole),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerRole returns the role of the user completing the order.
func (c CompleteOrderCommand) CallerRole() kernel.Role {
	return c.callerRole
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setCallerRole(callerRole kernel.Role) error {
	if err := callerRole.Validate(); err != nil {
		return err
	}

	c.callerRole = callerRole
	return nil
}
