package catalog_test

import (
	"testing"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Validate(t *testing.T) {
	for _, k := range catalog.Kinds() {
		require.NoError(t, k.Validate(), k)
	}
	require.ErrorIs(t, catalog.Kind("bogus").Validate(), errs.ErrValueIsInvalid)
}

func TestNewIdentity(t *testing.T) {
	t.Run("should share a key across spellings", func(t *testing.T) {
		a, okA := catalog.NewIdentity(catalog.Fault, "no enciende")
		b, okB := catalog.NewIdentity(catalog.Fault, "  NO   ENCIENDE ")

		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, a.Key(), b.Key())
		assert.Equal(t, "No enciende", a.Name())
		assert.Equal(t, "NO ENCIENDE", b.Name())
	})

	t.Run("should report no identity for blank text", func(t *testing.T) {
		_, ok := catalog.NewIdentity(catalog.Accessory, " \t ")

		assert.False(t, ok)
	})
}

func TestNewEntry(t *testing.T) {
	t.Run("should build a spare part with cost", func(t *testing.T) {
		id, _ := catalog.NewIdentity(catalog.SparePart, "fuente 12v")
		cost, err := kernel.MoneyFromCents(150000)
		require.NoError(t, err)

		e, err := catalog.NewEntry(id, "fuente switching", &cost)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "Fuente 12v", e.Name())
		assert.Equal(t, "Fuente switching", e.Description())
		assert.Equal(t, int64(150000), e.Cost().Cents())
	})

	t.Run("should reject cost on other kinds", func(t *testing.T) {
		id, _ := catalog.NewIdentity(catalog.Fault, "no enciende")
		cost, _ := kernel.MoneyFromCents(1)

		_, err := catalog.NewEntry(id, "", &cost)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an empty identity", func(t *testing.T) {
		_, err := catalog.NewEntry(catalog.Identity{}, "", nil)

		require.Error(t, err)
	})
}
