package commands

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/shelf"
	"laundrytrack/internal/pkg/guard"
)

var (
	ErrCreateShelfCommandIsNotConstructed = errors.New(
		"CreateShelfCommand must be created via NewCreateShelfCommand constructor",
	)
	ErrShelfCodeIsRequired = errors.New("shelf code is required")
)

// CreateShelfCommand represents a request to provision a new physical shelf.
// Only administrators may provision shelves.
type CreateShelfCommand struct { //nolint:recvcheck //using for validation
	code       string
	stage      shelf.Stage
	callerRole kernel.Role

	guard guard.ConstructorGuard
}

// NewCreateShelfCommand creates a command to provision a shelf.
// Validates the code, the pipeline stage and the caller's role.
func NewCreateShelfCommand(code string, stage shelf.Stage, callerRole kernel.Role) (CreateShelfCommand, error) {
	shelfCommand := CreateShelfCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shelfCommand.setCode(code),
		shelfCommand.setStage(stage),
		shelfCommand.setCallerRole(callerRole),
	); err != nil {
		return CreateShelfCommand{}, err
	}

	return shelfCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShelfCommandIsNotConstructed if validation fails.
func (c CreateShelfCommand) Validate() error {
	return c.guard.Validate(ErrCreateShelfCommandIsNotConstructed)
}

// Code returns the human-readable shelf code.
func (c CreateShelfCommand) Code() string {
	return c.code
}

// Stage returns the pipeline stage the shelf serves.
func (c CreateShelfCommand) Stage() shelf.Stage {
	return c.stage
}

// CallerRole returns the role of the user provisioning the shelf.
func (c CreateShelfCommand) CallerRole() kernel.Role {
	return c.callerRole
}

func (c *CreateShelfCommand) setCode(code string) error {
	if code == "" {
		return ErrShelfCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateShelfCommand) setStage(stage shelf.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}

func (c *CreateShelfCommand) setCallerRole(callerRole kernel.Role) error {
	if err := callerRole.Validate(); err != nil {
		return err
	}

	c.callerRole = callerRole
	return nil
}
