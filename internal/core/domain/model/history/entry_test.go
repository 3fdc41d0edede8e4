package history_test

import (
	"testing"
	"time"

	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	now := time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)

	t.Run("should default the actor", func(t *testing.T) {
		e, err := history.NewEntry(7, "  ", history.Reopened, " falla  otra vez ", now)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, history.DefaultActor, e.Actor())
		assert.Equal(t, "falla otra vez", e.Note())
		assert.Equal(t, int64(7), e.OrderID())
		assert.Equal(t, now, e.CreatedAt())
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		_, err := history.NewEntry(7, "ana", history.Action("deleted"), "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require an order", func(t *testing.T) {
		_, err := history.NewEntry(0, "ana", history.Finished, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, _ := history.NewEntry(1, "", history.Created, "", now)
		b, _ := history.NewEntry(1, "", history.Created, "", now)

		assert.False(t, a.ID().IsEqual(b.ID()))
	})
}
