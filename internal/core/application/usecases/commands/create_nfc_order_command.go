package commands

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/pkg/guard"
)

var ErrCreateNfcOrderCommandIsNotConstructed = errors.New(
	"CreateNfcOrderCommand must be created via NewCreateNfcOrderCommand constructor",
)

// CreateNfcOrderCommand represents a request to register a laundry order that
// must carry a physical NFC tag from the moment of creation. The tag itself is
// not part of the command: the handler acquires one from the pool.
//
// The initial status is explicit because NFC drop-off stations register orders
// at different points of the pipeline.
type CreateNfcOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	ownerID       kernel.UUID
	shelfLocation string
	initialStatus order.Status

	guard guard.ConstructorGuard
}

// NewCreateNfcOrderCommand creates a command to register a tagged laundry order.
// Validates identifiers, the shelf location and the initial status.
func NewCreateNfcOrderCommand(
	orderID, ownerID kernel.UUID,
	shelfLocation string,
	initialStatus order.Status,
) (CreateNfcOrderCommand, error) {
	orderCommand := CreateNfcOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOwnerID(ownerID),
		orderCommand.setShelfLocation(shelfLocation),
		orderCommand.setInitialStatus(initialStatus),
	); err != nil {
		return CreateNfcOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateNfcOrderCommandIsNotConstructed if validation fails.
func (c CreateNfcOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateNfcOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateNfcOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the customer who owns the order.
func (c CreateNfcOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ShelfLocation returns the shelf code where the items were placed.
func (c CreateNfcOrderCommand) ShelfLocation() string {
	return c.shelfLocation
}

// InitialStatus returns the pipeline status the order starts in.
func (c CreateNfcOrderCommand) InitialStatus() order.Status {
	return c.initialStatus
}

func (c *CreateNfcOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateNfcOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateNfcOrderCommand) setShelfLocation(shelfLocation string) error {
	if shelfLocation == "" {
		return ErrShelfLocationIsRequired
	}

	c.shelfLocation = shelfLocation
	return nil
}

func (c *CreateNfcOrderCommand) setInitialStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.initialStatus = status
	return nil
}
