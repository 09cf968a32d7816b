// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly, bypassing the domain aggregates,
// and return flat response structs shaped for the API layer.
package queries

import (
	"errors"
	"time"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full status history.
// Customers may only look at their own orders; administrators see everything.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, callerID, kernel.RoleUser)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	callerID   kernel.UUID
	callerRole kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
// Validates the order ID, the caller's ID and the caller's role.
func NewGetOrderQuery(orderID, callerID kernel.UUID, callerRole kernel.Role) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderQuery.setOrderID(orderID),
		orderQuery.setCallerID(callerID),
		orderQuery.setCallerRole(callerRole),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CallerID returns the identifier of the requesting user.
func (q GetOrderQuery) CallerID() kernel.UUID {
	return q.callerID
}

// CallerRole returns the role of the requesting user.
func (q GetOrderQuery) CallerRole() kernel.Role {
	return q.callerRole
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	q.callerID = callerID
	return nil
}

func (q *GetOrderQuery) setCallerRole(callerRole kernel.Role) error {
	if err := callerRole.Validate(); err != nil {
		return err
	}

	q.callerRole = callerRole
	return nil
}

// StatusLogItem is one entry of an order's status history as seen by readers.
type StatusLogItem struct {
	Status    string
	Timestamp time.Time
}

// GetOrderQueryResponse represents a single order for API consumers.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	NfcTag        *string
	Status        string
	ShelfLocation string
	StatusLog     []StatusLogItem
}
