// Package ports defines repository and collaborator interfaces for the laundry
// tracking domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their complete state including the status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The read-modify-write cycle is atomic per order: the update rewrites
	// the whole record inside the unit of work's transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByOwner retrieves every order owned by the given user,
	// regardless of status. Used for the customer's own order listing.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// GetAllWithTag retrieves every non-completed order that has an NFC tag
	// bound. Used at startup to rehydrate the tag pool's bound set.
	GetAllWithTag(ctx context.Context) ([]*order.Order, error)

	// GetAllCompletedWithTag retrieves completed orders that still carry a
	// tag reference. The reconciliation job scans these to find tags that
	// were never returned to the pool.
	GetAllCompletedWithTag(ctx context.Context) ([]*order.Order, error)
}
