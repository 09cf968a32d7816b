package queries

import (
	"errors"

	"laundrytrack/internal/pkg/guard"
)

var ErrGetAllShelvesQueryIsNotConstructed = errors.New(
	"GetAllShelvesQuery must be created via NewGetAllShelvesQuery constructor",
)

// GetAllShelvesQuery retrieves every provisioned shelf with its occupancy.
// This is the board the staff looks at to find a free shelf.
//
// Example:
//
//	query := NewGetAllShelvesQuery()
//	handler := NewGetAllShelvesQueryHandler(db)
//
//	shelves, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shelves: %w", err)
//	}
//	for _, s := range shelves {
//	    fmt.Printf("%s (%s) occupied=%v\n", s.Code, s.Stage, s.IsOccupied)
//	}
type GetAllShelvesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShelvesQuery creates a query to retrieve all shelves.
// This is a parameterless query.
func NewGetAllShelvesQuery() GetAllShelvesQuery {
	return GetAllShelvesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShelvesQueryIsNotConstructed if validation fails.
func (q GetAllShelvesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShelvesQueryIsNotConstructed)
}
