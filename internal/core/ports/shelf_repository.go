package ports

import (
	"context"

	"laundrytrack/internal/core/domain/model/shelf"
)

// ShelfRepository defines the persistence contract for shelf aggregates.
// Shelves are keyed by their human-readable code rather than a surrogate ID.
type ShelfRepository interface {
	// Add persists a newly provisioned shelf.
	// Returns an ObjectAlreadyExistsError when the code is already taken.
	Add(ctx context.Context, aggregate *shelf.Shelf) error

	// Update persists changes to an existing shelf.
	// Returns an ObjectNotFoundError when the code is unknown.
	Update(ctx context.Context, aggregate *shelf.Shelf) error

	// GetByCode retrieves a shelf by its unique code.
	// Returns an ObjectNotFoundError when the code is unknown.
	GetByCode(ctx context.Context, code string) (*shelf.Shelf, error)

	// GetAll retrieves every provisioned shelf.
	GetAll(ctx context.Context) ([]*shelf.Shelf, error)
}
