package commands

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrShelfLocationIsRequired = errors.New("shelf location is required")
)

// CreateOrderCommand represents a request to register a newly dropped-off
// laundry order. Encapsulates the order identity, the owning customer and
// the shelf where the clothes were placed.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, ownerID, "W-03")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s registered and awaiting washing", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	ownerID       kernel.UUID
	shelfLocation string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates that order and owner IDs are valid and the shelf location is not
// empty. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID, ownerID kernel.UUID, shelfLocation string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOwnerID(ownerID),
		orderCommand.setShelfLocation(shelfLocation),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the customer who owns the order.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ShelfLocation returns the shelf code where the items were placed.
func (c CreateOrderCommand) ShelfLocation() string {
	return c.shelfLocation
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setShelfLocation(shelfLocation string) error {
	if shelfLocation == "" {
		return ErrShelfLocationIsRequired
	}

	c.shelfLocation = shelfLocation
	return nil
}
