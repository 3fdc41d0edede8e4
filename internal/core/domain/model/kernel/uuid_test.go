package kernel_test

import (
	"testing"

	"repairshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("should generate distinct valid ids", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("should expose the google uuid", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEqual(t, uuid.Nil, id.Value())
		assert.Equal(t, id.Value().String(), id.String())
	})

	t.Run("should not validate the zero value", func(t *testing.T) {
		var zero kernel.UUID

		require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
