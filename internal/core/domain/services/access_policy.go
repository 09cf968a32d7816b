package services

import (
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/errs"
)

// Access policy for the laundry tracking operations.
//
// The policy is a pure function of the caller's role and identity against the
// operation and the resource owner; it never narrows results silently. A
// caller either gets the operation or an AccessForbiddenError.
//
// Rules:
//   - admin-tagged operations require admin or super-admin role
//   - owner-scoped reads require the caller to be the owner, or an admin
//   - the status-update gate is configurable: historically any authenticated
//     caller could move an order, and deployments that rely on that keep it
//     by leaving requireStaff off

// AuthorizeAdmin allows the operation only for admin-capable roles.
//
// Parameters:
//   - role: The caller's role from the identity provider
//   - operation: Human-readable operation name used in the error message
//
// Returns nil for admins and super-admins, AccessForbiddenError otherwise.
func AuthorizeAdmin(role kernel.Role, operation string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.IsAdmin() {
		return errs.NewAccessForbiddenError(operation)
	}
	return nil
}

// AuthorizeOwnerOrAdmin allows the operation for the resource owner and for
// admin-capable roles.
//
// Parameters:
//   - role: The caller's role from the identity provider
//   - callerID: The caller's identity
//   - ownerID: The owner of the resource being accessed
//   - operation: Human-readable operation name used in the error message
func AuthorizeOwnerOrAdmin(role kernel.Role, callerID, ownerID kernel.UUID, operation string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := callerID.Validate(); err != nil {
		return err
	}
	if role.IsAdmin() || callerID.IsEqual(ownerID) {
		return nil
	}
	return errs.NewAccessForbiddenError(operation)
}

// AuthorizeStatusUpdate gates the order status transition operation.
//
// When requireStaff is false (the historical default) any authenticated caller
// may move an order through the pipeline. When true, admin capability is
// required, closing the gap the permissive configuration leaves open.
func AuthorizeStatusUpdate(role kernel.Role, requireStaff bool, operation string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if requireStaff && !role.IsAdmin() {
		return errs.NewAccessForbiddenError(operation)
	}
	return nil
}
