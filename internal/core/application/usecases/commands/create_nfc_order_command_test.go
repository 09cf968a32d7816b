package commands_test

import (
	"testing"

	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateNfcOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewCreateNfcOrderCommand(orderID, ownerID, "W-01", order.StatusWashed)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, ownerID, cmd.OwnerID())
	assert.Equal(t, "W-01", cmd.ShelfLocation())
	assert.Equal(t, order.StatusWashed, cmd.InitialStatus())
}

func TestNewCreateNfcOrderCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewCreateNfcOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "W-01", order.StatusUnknown)
	require.Error(t, err)
}

func TestNewCreateNfcOrderCommand_EmptyShelfLocation(t *testing.T) {
	_, err := commands.NewCreateNfcOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", order.StatusYetToWash)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShelfLocationIsRequired)
}
