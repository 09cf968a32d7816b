package commands

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/shelf"
	"laundrytrack/internal/pkg/guard"
)

var (
	ErrUpdateShelfCommandIsNotConstructed = errors.New(
		"UpdateShelfCommand must be created via NewUpdateShelfCommand constructor",
	)
	ErrNothingToUpdate = errors.New("shelf update must change the stage or the occupant")
	ErrClearAndAssign  = errors.New("shelf update cannot clear and assign an occupant at once")
)

// UpdateShelfCommand represents an administrative partial update of a shelf.
// Any combination of a stage change, clearing the occupant, or assigning a new
// occupant can be requested, but clearing and assigning are mutually exclusive.
// Omitted fields leave the shelf untouched.
type UpdateShelfCommand struct { //nolint:recvcheck //using for validation
	code         string
	stage        *shelf.Stage
	clearOrder   bool
	currentOrder *kernel.UUID
	callerRole   kernel.Role

	guard guard.ConstructorGuard
}

// NewUpdateShelfCommand creates a command to update a shelf.
// A nil stage keeps the current stage. clearOrder empties the shelf;
// a non-nil currentOrder places that order on it.
func NewUpdateShelfCommand(
	code string,
	stage *shelf.Stage,
	clearOrder bool,
	currentOrder *kernel.UUID,
	callerRole kernel.Role,
) (UpdateShelfCommand, error) {
	shelfCommand := UpdateShelfCommand{
		clearOrder: clearOrder,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shelfCommand.setCode(code),
		shelfCommand.setStage(stage),
		shelfCommand.setCurrentOrder(currentOrder),
		shelfCommand.setCallerRole(callerRole),
	); err != nil {
		return UpdateShelfCommand{}, err
	}

	if clearOrder && currentOrder != nil {
		return UpdateShelfCommand{}, ErrClearAndAssign
	}
	if stage == nil && !clearOrder && currentOrder == nil {
		return UpdateShelfCommand{}, ErrNothingToUpdate
	}

	return shelfCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShelfCommandIsNotConstructed if validation fails.
func (c UpdateShelfCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShelfCommandIsNotConstructed)
}

// Code returns the code of the shelf being updated.
func (c UpdateShelfCommand) Code() string {
	return c.code
}

// Stage returns the new stage, or nil to keep the current one.
func (c UpdateShelfCommand) Stage() *shelf.Stage {
	return c.stage
}

// ClearOrder reports whether the shelf should be emptied.
func (c UpdateShelfCommand) ClearOrder() bool {
	return c.clearOrder
}

// CurrentOrder returns the order to place on the shelf, or nil.
func (c UpdateShelfCommand) CurrentOrder() *kernel.UUID {
	return c.currentOrder
}

// CallerRole returns the role of the user updating the shelf.
func (c UpdateShelfCommand) CallerRole() kernel.Role {
	return c.callerRole
}

func (c *UpdateShelfCommand) setCode(code string) error {
	if code == "" {
		return ErrShelfCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *UpdateShelfCommand) setStage(stage *shelf.Stage) error {
	if stage == nil {
		return nil
	}
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}

func (c *UpdateShelfCommand) setCurrentOrder(currentOrder *kernel.UUID) error {
	if currentOrder == nil {
		return nil
	}
	if err := currentOrder.Validate(); err != nil {
		return err
	}

	c.currentOrder = currentOrder
	return nil
}

func (c *UpdateShelfCommand) setCallerRole(callerRole kernel.Role) error {
	if err := callerRole.Validate(); err != nil {
		return err
	}

	c.callerRole = callerRole
	return nil
}
