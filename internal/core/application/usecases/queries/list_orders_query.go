package queries

import (
	"errors"
	"fmt"
	"strings"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
	"repairshop/internal/pkg/textnorm"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first, optionally only those with a
// given status label. A zero limit means no limit.
type ListOrdersQuery struct {
	status string
	limit  int

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status string, limit int) (ListOrdersQuery, error) {
	if limit < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is negative", limit))
	}
	if strings.TrimSpace(status) != "" {
		status = textnorm.Label(status)
	}
	return ListOrdersQuery{status: status, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() string { return q.status }

func (q ListOrdersQuery) Limit() int { return q.limit }
