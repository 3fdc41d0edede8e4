package queries

import (
	"errors"
	"fmt"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists the audit trail of an order, oldest first.
type GetOrderHistoryQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID int64) (GetOrderHistoryQuery, error) {
	if orderID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause(
			"orderId", fmt.Errorf("%d is not a valid reference", orderID))
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() int64 { return q.orderID }
