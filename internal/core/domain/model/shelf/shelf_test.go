package shelf_test

import (
	"testing"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/shelf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShelf(t *testing.T) {
	t.Run("should create empty shelf", func(t *testing.T) {
		s, err := shelf.NewShelf("W_A1", shelf.StageWash)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "W_A1", s.Code())
		assert.Equal(t, shelf.StageWash, s.Stage())
		assert.False(t, s.IsOccupied())
		assert.Nil(t, s.CurrentOrder())
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		s, err := shelf.NewShelf("", shelf.StageWash)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("should fail with invalid stage", func(t *testing.T) {
		s, err := shelf.NewShelf("W_A1", shelf.StageUnknown)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("zero value shelf fails validation", func(t *testing.T) {
		var s shelf.Shelf

		require.ErrorIs(t, s.Validate(), shelf.ErrShelfIsNotConstructed)
	})
}

func TestRestoreShelf(t *testing.T) {
	t.Run("should restore occupied shelf", func(t *testing.T) {
		orderID := kernel.NewUUID()

		s, err := shelf.RestoreShelf("I_B2", shelf.StageIron, &orderID)

		require.NoError(t, err)
		assert.True(t, s.IsOccupied())
		require.NotNil(t, s.CurrentOrder())
		assert.True(t, s.CurrentOrder().IsEqual(orderID))
	})

	t.Run("should restore free shelf", func(t *testing.T) {
		s, err := shelf.RestoreShelf("I_B2", shelf.StageIron, nil)

		require.NoError(t, err)
		assert.False(t, s.IsOccupied())
	})

	t.Run("should reject invalid order reference", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := shelf.RestoreShelf("I_B2", shelf.StageIron, &invalid)

		require.Error(t, err)
	})
}

func TestShelf_Assign(t *testing.T) {
	t.Run("should occupy a free shelf", func(t *testing.T) {
		s, err := shelf.NewShelf("W_A1", shelf.StageWash)
		require.NoError(t, err)
		orderID := kernel.NewUUID()

		require.NoError(t, s.Assign(orderID))

		assert.True(t, s.IsOccupied())
		assert.True(t, s.CurrentOrder().IsEqual(orderID))
	})

	t.Run("re-assigning the same order is a no-op", func(t *testing.T) {
		s, _ := shelf.NewShelf("W_A1", shelf.StageWash)
		orderID := kernel.NewUUID()
		require.NoError(t, s.Assign(orderID))

		require.NoError(t, s.Assign(orderID))

		assert.True(t, s.IsOccupied())
	})

	t.Run("assigning a different order to an occupied shelf fails", func(t *testing.T) {
		s, _ := shelf.NewShelf("W_A1", shelf.StageWash)
		require.NoError(t, s.Assign(kernel.NewUUID()))

		err := s.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, shelf.ErrShelfIsOccupied)
	})

	t.Run("should reject invalid order ID", func(t *testing.T) {
		s, _ := shelf.NewShelf("W_A1", shelf.StageWash)
		var invalid kernel.UUID

		require.Error(t, s.Assign(invalid))
		assert.False(t, s.IsOccupied())
	})
}

func TestShelf_Clear(t *testing.T) {
	t.Run("should free an occupied shelf", func(t *testing.T) {
		s, _ := shelf.NewShelf("R_C1", shelf.StageReady)
		require.NoError(t, s.Assign(kernel.NewUUID()))

		s.Clear()

		assert.False(t, s.IsOccupied())
		assert.Nil(t, s.CurrentOrder())
	})

	t.Run("clearing a free shelf is a no-op", func(t *testing.T) {
		s, _ := shelf.NewShelf("R_C1", shelf.StageReady)

		s.Clear()

		assert.False(t, s.IsOccupied())
	})
}

func TestShelf_Restage(t *testing.T) {
	t.Run("should change the stage", func(t *testing.T) {
		s, _ := shelf.NewShelf("W_A1", shelf.StageWash)

		require.NoError(t, s.Restage(shelf.StageReady))

		assert.Equal(t, shelf.StageReady, s.Stage())
	})

	t.Run("should reject invalid stage", func(t *testing.T) {
		s, _ := shelf.NewShelf("W_A1", shelf.StageWash)

		require.Error(t, s.Restage(shelf.StageUnknown))
		assert.Equal(t, shelf.StageWash, s.Stage())
	})
}

func TestShelf_OccupancyConsistency(t *testing.T) {
	// IsOccupied is derived from the order reference, so the two can never
	// disagree regardless of the mutation sequence.
	s, err := shelf.NewShelf("W_A1", shelf.StageWash)
	require.NoError(t, err)

	checkConsistent := func() {
		assert.Equal(t, s.CurrentOrder() != nil, s.IsOccupied())
	}

	checkConsistent()
	require.NoError(t, s.Assign(kernel.NewUUID()))
	checkConsistent()
	s.Clear()
	checkConsistent()
	require.NoError(t, s.Restage(shelf.StageIron))
	checkConsistent()
}
