package order_test

import (
	"testing"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		kind order.Kind
		want string
	}{
		{"EN REPARACION", order.InProgress, "EN REPARACION"},
		{"en reparación", order.InProgress, "EN REPARACION"},
		{"EN SOS", order.InProgress, "EN SOS"},
		{"en  nico gori", order.InProgress, "EN NICO GORI"},
		{"Terminada", order.Done, "TERMINADA"},
		{"SUSPENDIDA", order.Suspended, "SUSPENDIDA"},
		{"retirada", order.PickedUp, "RETIRADA"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			st, err := order.ParseStatus(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.kind, st.Kind())
			assert.Equal(t, tt.want, st.Label())
		})
	}

	t.Run("should reject empty label", func(t *testing.T) {
		_, err := order.ParseStatus("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown label", func(t *testing.T) {
		_, err := order.ParseStatus("PERDIDA")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject bare prefix", func(t *testing.T) {
		_, err := order.ParseStatus("EN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_CanChangeTo(t *testing.T) {
	workshop, err := order.ParseStatus("EN SOS")
	require.NoError(t, err)

	allowed := []struct {
		name     string
		from, to order.Status
	}{
		{"in progress to workshop", order.StatusRepairing, workshop},
		{"workshop to in progress", workshop, order.StatusRepairing},
		{"in progress to done", workshop, order.StatusDone},
		{"done to in progress", order.StatusDone, order.StatusRepairing},
		{"done to picked up", order.StatusDone, order.StatusPickedUp},
		{"resume suspended", order.StatusSuspended, workshop},
		{"same status", order.StatusPickedUp, order.StatusPickedUp},
	}
	for _, tt := range allowed {
		t.Run("allows "+tt.name, func(t *testing.T) {
			require.NoError(t, tt.from.CanChangeTo(tt.to))
		})
	}

	rejected := []struct {
		name     string
		from, to order.Status
	}{
		{"in progress to picked up", order.StatusRepairing, order.StatusPickedUp},
		{"suspended to picked up", order.StatusSuspended, order.StatusPickedUp},
		{"edit into suspended", order.StatusRepairing, order.StatusSuspended},
		{"picked up to in progress", order.StatusPickedUp, order.StatusRepairing},
		{"picked up to done", order.StatusPickedUp, order.StatusDone},
		{"suspended to done", order.StatusSuspended, order.StatusDone},
	}
	for _, tt := range rejected {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			err := tt.from.CanChangeTo(tt.to)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			var transitionErr *errs.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tt.from.Label(), transitionErr.From)
			assert.Equal(t, tt.to.Label(), transitionErr.To)
		})
	}

	t.Run("rejects zero status", func(t *testing.T) {
		require.ErrorIs(t, order.Status{}.CanChangeTo(order.StatusDone), errs.ErrValueIsInvalid)
	})
}

func TestStatusCatalog(t *testing.T) {
	t.Run("default catalog lists every label", func(t *testing.T) {
		c := order.DefaultStatusCatalog()

		labels := c.Labels()

		assert.Equal(t, order.LabelRepairing, labels[0])
		assert.Contains(t, labels, "EN WERTECH")
		assert.Equal(t, []string{order.LabelDone, order.LabelSuspended, order.LabelPickedUp}, labels[len(labels)-3:])
	})

	t.Run("resolve rejects unconfigured workshops", func(t *testing.T) {
		c, err := order.NewStatusCatalog([]string{"en taller norte"})
		require.NoError(t, err)

		st, err := c.Resolve("EN TALLER NORTE")
		require.NoError(t, err)
		assert.True(t, st.IsInProgress())

		_, err = c.Resolve("EN SOS")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		st, err = c.Resolve("terminada")
		require.NoError(t, err)
		assert.Equal(t, order.StatusDone, st)
	})

	t.Run("rejects workshop labels without prefix", func(t *testing.T) {
		_, err := order.NewStatusCatalog([]string{"TERMINADA"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("deduplicates labels", func(t *testing.T) {
		c, err := order.NewStatusCatalog([]string{"EN SOS", "en sos", "EN REPARACION"})
		require.NoError(t, err)

		assert.Len(t, c.Labels(), 5)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "IN_PROGRESS", order.InProgress.String())
	assert.Equal(t, "DONE", order.Done.String())
	assert.Equal(t, "SUSPENDED", order.Suspended.String())
	assert.Equal(t, "PICKED_UP", order.PickedUp.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
}
