package queries

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/guard"
)

var (
	ErrGetShelfQueryIsNotConstructed = errors.New(
		"GetShelfQuery must be created via NewGetShelfQuery constructor",
	)
	ErrShelfCodeIsRequired = errors.New("shelf code is required")
)

// GetShelfQuery retrieves a single shelf with its occupancy state.
type GetShelfQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewGetShelfQuery creates a query to retrieve one shelf by code.
func NewGetShelfQuery(code string) (GetShelfQuery, error) {
	shelfQuery := GetShelfQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := shelfQuery.setCode(code); err != nil {
		return GetShelfQuery{}, err
	}

	return shelfQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShelfQueryIsNotConstructed if validation fails.
func (q GetShelfQuery) Validate() error {
	return q.guard.Validate(ErrGetShelfQueryIsNotConstructed)
}

// Code returns the code of the shelf to fetch.
func (q GetShelfQuery) Code() string {
	return q.code
}

func (q *GetShelfQuery) setCode(code string) error {
	if code == "" {
		return ErrShelfCodeIsRequired
	}

	q.code = code
	return nil
}

// ShelfOccupant is the order record currently resting on a shelf.
type ShelfOccupant struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	NfcTag        *string
	Status        string
	ShelfLocation string
}

// GetShelfQueryResponse represents one shelf for API consumers.
// IsOccupied is always derived from the occupant reference, never stored.
// CurrentOrder carries the full occupant record when the shelf is occupied
// and the referenced order still exists.
type GetShelfQueryResponse struct {
	Code         string
	Stage        string
	IsOccupied   bool
	CurrentOrder *ShelfOccupant
}
