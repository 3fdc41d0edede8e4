package kernel_test

import (
	"math"
	"testing"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("should round typed amounts to cents", func(t *testing.T) {
		m, err := kernel.MoneyFromFloat(19.999)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), m.Cents())
		assert.Equal(t, "20.00", m.String())
	})

	t.Run("should pad single digit cents", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(705)

		require.NoError(t, err)
		assert.Equal(t, "7.05", m.String())
		assert.InDelta(t, 7.05, m.Float(), 1e-9)
	})

	t.Run("should treat zero as zero", func(t *testing.T) {
		m, err := kernel.MoneyFromFloat(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non numbers", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(math.NaN())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	c := kernel.NewFixedClock(start)

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
