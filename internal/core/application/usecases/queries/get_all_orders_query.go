package queries

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system for back office views.
// The listing joins the user directory so each row carries the owner's name
// and email. Administrators only.
type GetAllOrdersQuery struct { //nolint:recvcheck //using for validation
	callerRole kernel.Role

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list all orders.
func NewGetAllOrdersQuery(callerRole kernel.Role) (GetAllOrdersQuery, error) {
	listQuery := GetAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := listQuery.setCallerRole(callerRole); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// CallerRole returns the role of the requesting user.
func (q GetAllOrdersQuery) CallerRole() kernel.Role {
	return q.callerRole
}

func (q *GetAllOrdersQuery) setCallerRole(callerRole kernel.Role) error {
	if err := callerRole.Validate(); err != nil {
		return err
	}

	q.callerRole = callerRole
	return nil
}

// GetAllOrdersQueryResponse represents one order enriched with owner details
// from the user directory. OwnerName and OwnerEmail stay empty when the user
// directory has no record for the owner.
type GetAllOrdersQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	OwnerName     string
	OwnerEmail    string
	NfcTag        *string
	Status        string
	ShelfLocation string
}
