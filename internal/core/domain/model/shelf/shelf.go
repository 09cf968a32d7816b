package shelf

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/errs"
	"laundrytrack/internal/pkg/guard"
)

var (
	// ErrShelfIsNotConstructed is returned when using an improperly initialized Shelf.
	ErrShelfIsNotConstructed = errors.New("Shelf must be created via NewShelf or RestoreShelf")

	// ErrCodeIsRequired is returned when attempting to create a shelf without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")

	// ErrShelfIsOccupied is returned when assigning an order to a shelf that
	// already holds a different order.
	ErrShelfIsOccupied = errors.New("shelf is already occupied")
)

// Shelf represents a physical storage slot in the laundry facility.
// It is an aggregate root managing the slot's identity, the pipeline stage it
// serves, and the order currently resting on it.
//
// Occupancy is not stored as an independent boolean: it is derived from the
// presence of the current order reference. This makes the occupancy flag and
// the order reference structurally incapable of disagreeing, which the
// field-by-field update style was prone to.
//
// Business rules:
//   - code is unique across all shelves and immutable once created
//   - at most one order rests on a shelf at a time
//   - the stage can be changed by staff when shelves are physically moved
type Shelf struct {
	// code is the human-readable unique identifier, e.g. "W_A1"
	code string

	// stage is the pipeline phase this shelf physically serves
	stage Stage

	// currentOrder references the order resting on the shelf, nil when free
	currentOrder *kernel.UUID

	// guard ensures the shelf was properly constructed
	guard guard.ConstructorGuard
}

// NewShelf creates an empty shelf with the given code and stage.
// This is the staff-provisioning entry point; shelves start unoccupied.
//
// Parameters:
//   - code: Human-readable unique identifier (must be non-empty)
//   - stage: The pipeline phase the shelf serves (must be valid)
//
// Returns:
//   - *Shelf: The created shelf if all validations pass
//   - error: Validation error if any parameter is invalid
func NewShelf(code string, stage Stage) (*Shelf, error) {
	s := &Shelf{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCode(code),
		s.setStage(stage),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShelf reconstructs a Shelf aggregate from persistent storage,
// including its current occupancy.
func RestoreShelf(code string, stage Stage, currentOrder *kernel.UUID) (*Shelf, error) {
	s, err := NewShelf(code, stage)
	if err != nil {
		return nil, err
	}

	if currentOrder != nil {
		if err := currentOrder.Validate(); err != nil {
			return nil, err
		}
		s.currentOrder = currentOrder
	}

	return s, nil
}

// Validate ensures the Shelf instance was properly constructed through a factory function.
func (s *Shelf) Validate() error {
	if s == nil {
		return ErrShelfIsNotConstructed
	}
	return s.guard.Validate(ErrShelfIsNotConstructed)
}

// Code returns the shelf's unique human-readable identifier.
func (s *Shelf) Code() string {
	return s.code
}

// Stage returns the pipeline phase the shelf serves.
func (s *Shelf) Stage() Stage {
	return s.stage
}

// CurrentOrder returns the order resting on the shelf, or nil when free.
func (s *Shelf) CurrentOrder() *kernel.UUID {
	return s.currentOrder
}

// IsOccupied reports whether an order is resting on the shelf.
// Derived from the current order reference; there is no separately stored flag.
func (s *Shelf) IsOccupied() bool {
	return s.currentOrder != nil
}

// Assign places an order on the shelf.
//
// Business rules:
//   - the order ID must be valid
//   - a free shelf accepts any order
//   - re-assigning the same order is a no-op
//   - assigning over a different order fails with ErrShelfIsOccupied
func (s *Shelf) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if s.currentOrder != nil {
		if s.currentOrder.IsEqual(orderID) {
			return nil
		}
		return ErrShelfIsOccupied
	}

	s.currentOrder = &orderID
	return nil
}

// Clear removes the current order from the shelf.
// Clearing a free shelf is a no-op.
func (s *Shelf) Clear() {
	s.currentOrder = nil
}

// Restage changes the pipeline phase the shelf serves.
// Used when staff physically relocate a shelf to a different station.
func (s *Shelf) Restage(stage Stage) error {
	return s.setStage(stage)
}

func (s *Shelf) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	s.code = code
	return nil
}

func (s *Shelf) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	s.stage = stage
	return nil
}
