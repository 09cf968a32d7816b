package queries

import (
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves every order owned by one customer.
// Customers may only list their own orders; administrators may list anyone's.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerID    kernel.UUID
	callerID   kernel.UUID
	callerRole kernel.Role

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query to list a customer's orders.
func NewGetUserOrdersQuery(ownerID, callerID kernel.UUID, callerRole kernel.Role) (GetUserOrdersQuery, error) {
	listQuery := GetUserOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setOwnerID(ownerID),
		listQuery.setCallerID(callerID),
		listQuery.setCallerRole(callerRole),
	); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// OwnerID returns the customer whose orders are listed.
func (q GetUserOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// CallerID returns the identifier of the requesting user.
func (q GetUserOrdersQuery) CallerID() kernel.UUID {
	return q.callerID
}

// CallerRole returns the role of the requesting user.
func (q GetUserOrdersQuery) CallerRole() kernel.Role {
	return q.callerRole
}

func (q *GetUserOrdersQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}

func (q *GetUserOrdersQuery) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	q.callerID = callerID
	return nil
}

func (q *GetUserOrdersQuery) setCallerRole(callerRole kernel.Role) error {
	if err := callerRole.Validate(); err != nil {
		return err
	}

	q.callerRole = callerRole
	return nil
}
