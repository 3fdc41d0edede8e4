package queries

import (
	"context"
	"errors"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/guard"
)

var ErrListStatusesQueryIsNotConstructed = errors.New(
	"ListStatusesQuery must be created via NewListStatusesQuery constructor",
)

type ListStatusesQuery struct {
	guard guard.ConstructorGuard
}

func NewListStatusesQuery() ListStatusesQuery {
	return ListStatusesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListStatusesQueryIsNotConstructed)
}

type StatusResponse struct {
	Label string
	Kind  string
}

// ListStatusesQueryHandler serves the configured labels without touching the
// database.
type ListStatusesQueryHandler struct {
	statuses *order.StatusCatalog
}

func NewListStatusesQueryHandler(statuses *order.StatusCatalog) ListStatusesQueryHandler {
	return ListStatusesQueryHandler{statuses: statuses}
}

func (h ListStatusesQueryHandler) Handle(_ context.Context, query ListStatusesQuery) ([]StatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	labels := h.statuses.Labels()
	out := make([]StatusResponse, 0, len(labels))
	for _, l := range labels {
		st, err := h.statuses.Resolve(l)
		if err != nil {
			return nil, err
		}
		out = append(out, StatusResponse{Label: st.Label(), Kind: st.Kind().String()})
	}
	return out, nil
}
