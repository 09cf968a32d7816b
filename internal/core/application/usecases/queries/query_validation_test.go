package queries_test

import (
	"testing"

	"laundrytrack/internal/core/application/usecases/queries"
	"laundrytrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID(), kernel.RoleUser)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidRole(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleUnknown)
	require.Error(t, err)
}

func TestNewGetUserOrdersQuery_InvalidOwner(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery(kernel.UUID{}, kernel.NewUUID(), kernel.RoleUser)
	require.Error(t, err)
}

func TestNewGetAllOrdersQuery_InvalidRole(t *testing.T) {
	_, err := queries.NewGetAllOrdersQuery(kernel.RoleUnknown)
	require.Error(t, err)
}

func TestNewGetShelfQuery_EmptyCode(t *testing.T) {
	_, err := queries.NewGetShelfQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrShelfCodeIsRequired)
}

func TestGetAllShelvesQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetAllShelvesQuery
	require.Error(t, query.Validate())
	require.NoError(t, queries.NewGetAllShelvesQuery().Validate())
}
