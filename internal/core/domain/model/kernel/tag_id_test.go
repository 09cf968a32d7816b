package kernel_test

import (
	"testing"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagID(t *testing.T) {
	t.Run("should create tag from non-empty string", func(t *testing.T) {
		tag, err := kernel.NewTagID("TAG-001")

		require.NoError(t, err)
		require.NoError(t, tag.Validate())
		assert.Equal(t, "TAG-001", tag.String())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		tag, err := kernel.NewTagID("  TAG-002 ")

		require.NoError(t, err)
		assert.Equal(t, "TAG-002", tag.String())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := kernel.NewTagID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject whitespace-only string", func(t *testing.T) {
		_, err := kernel.NewTagID("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTagID_IsEqual(t *testing.T) {
	tag1, _ := kernel.NewTagID("TAG-001")
	tag2, _ := kernel.NewTagID("TAG-001")
	tag3, _ := kernel.NewTagID("TAG-002")

	assert.True(t, tag1.IsEqual(tag2))
	assert.False(t, tag1.IsEqual(tag3))
}

func TestTagID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var tag kernel.TagID

		require.ErrorIs(t, tag.Validate(), errs.ErrValueIsRequired)
	})
}
