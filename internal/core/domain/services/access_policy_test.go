package services_test

import (
	"testing"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestAuthorizeAdmin(t *testing.T) {
	t.Run("admin and super-admin are allowed", func(t *testing.T) {
		require.NoError(t, services.AuthorizeAdmin(kernel.RoleAdmin, "create shelf"))
		require.NoError(t, services.AuthorizeAdmin(kernel.RoleSuperAdmin, "create shelf"))
	})

	t.Run("user is forbidden", func(t *testing.T) {
		err := services.AuthorizeAdmin(kernel.RoleUser, "create shelf")

		require.ErrorIs(t, err, errs.ErrAccessForbidden)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		require.Error(t, services.AuthorizeAdmin(kernel.RoleUnknown, "create shelf"))
	})
}

func TestAuthorizeOwnerOrAdmin(t *testing.T) {
	owner := kernel.NewUUID()
	stranger := kernel.NewUUID()

	t.Run("owner is allowed", func(t *testing.T) {
		require.NoError(t, services.AuthorizeOwnerOrAdmin(kernel.RoleUser, owner, owner, "get order"))
	})

	t.Run("admin is allowed on another user's resource", func(t *testing.T) {
		require.NoError(t, services.AuthorizeOwnerOrAdmin(kernel.RoleAdmin, stranger, owner, "get order"))
	})

	t.Run("non-owner non-admin is forbidden", func(t *testing.T) {
		err := services.AuthorizeOwnerOrAdmin(kernel.RoleUser, stranger, owner, "get order")

		require.ErrorIs(t, err, errs.ErrAccessForbidden)
	})

	t.Run("invalid caller identity is rejected", func(t *testing.T) {
		var zero kernel.UUID

		require.Error(t, services.AuthorizeOwnerOrAdmin(kernel.RoleUser, zero, owner, "get order"))
	})
}

func TestAuthorizeStatusUpdate(t *testing.T) {
	t.Run("permissive configuration allows any authenticated caller", func(t *testing.T) {
		require.NoError(t, services.AuthorizeStatusUpdate(kernel.RoleUser, false, "update order status"))
		require.NoError(t, services.AuthorizeStatusUpdate(kernel.RoleAdmin, false, "update order status"))
	})

	t.Run("staff-required configuration forbids plain users", func(t *testing.T) {
		err := services.AuthorizeStatusUpdate(kernel.RoleUser, true, "update order status")

		require.ErrorIs(t, err, errs.ErrAccessForbidden)
		require.NoError(t, services.AuthorizeStatusUpdate(kernel.RoleAdmin, true, "update order status"))
	})

	t.Run("invalid role is rejected in both configurations", func(t *testing.T) {
		require.Error(t, services.AuthorizeStatusUpdate(kernel.RoleUnknown, false, "update order status"))
		require.Error(t, services.AuthorizeStatusUpdate(kernel.RoleUnknown, true, "update order status"))
	})
}
