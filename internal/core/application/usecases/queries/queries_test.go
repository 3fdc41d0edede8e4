package queries_test

import (
	"context"
	"testing"

	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors(t *testing.T) {
	t.Run("should reject non-positive order ids", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = queries.NewGetOrderHistoryQuery(-1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative limits", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should normalize the status filter", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(" en  sos ", 10)
		require.NoError(t, err)
		assert.Equal(t, "EN SOS", q.Status())
		assert.Equal(t, 10, q.Limit())
	})

	t.Run("should reject unknown catalog kinds", func(t *testing.T) {
		_, err := queries.NewListCatalogQuery(catalog.Kind("tools"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUnconstructedQueries(t *testing.T) {
	_, err := queries.GetOrderQueryHandler{}.Handle(context.Background(), queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)

	_, err = queries.ListOrdersQueryHandler{}.Handle(context.Background(), queries.ListOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)

	_, err = queries.ListStatusesQueryHandler{}.Handle(context.Background(), queries.ListStatusesQuery{})
	require.ErrorIs(t, err, queries.ErrListStatusesQueryIsNotConstructed)
}

func TestListStatusesQueryHandler(t *testing.T) {
	statuses, err := order.NewStatusCatalog([]string{"en sos"})
	require.NoError(t, err)

	got, err := queries.NewListStatusesQueryHandler(statuses).Handle(context.Background(), queries.NewListStatusesQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.StatusResponse{
		{Label: order.LabelRepairing, Kind: "IN_PROGRESS"},
		{Label: "EN SOS", Kind: "IN_PROGRESS"},
		{Label: order.LabelDone, Kind: "DONE"},
		{Label: order.LabelSuspended, Kind: "SUSPENDED"},
		{Label: order.LabelPickedUp, Kind: "PICKED_UP"},
	}, got)
}
