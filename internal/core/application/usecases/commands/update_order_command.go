package commands

import (
	"errors"
	"strings"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderInput is an edit of an order. Nil fields are left as stored;
// set stamp halves replace the stored ones.
type UpdateOrderInput struct {
	ClientName  *string
	ClientPhone *string

	EquipmentID          *int64
	EquipmentDescription *string
	EquipmentSerial      *string

	Fault       *string
	Notes       *string
	Accessories *string
	Repair      *string
	SpareParts  *string
	Amount      *kernel.Money

	Status *string

	Intake kernel.Stamp
	Exit   kernel.Stamp
	Return kernel.Stamp
	Pickup kernel.Stamp
}

func (in UpdateOrderInput) touchesClient() bool {
	return in.ClientName != nil || in.ClientPhone != nil
}

func (in UpdateOrderInput) touchesEquipment() bool {
	return in.EquipmentID != nil || in.EquipmentDescription != nil || in.EquipmentSerial != nil
}

// UpdateOrderCommand edits an order and, when it carries a status, applies
// a plain status change.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   string
	orderID int64
	input   UpdateOrderInput

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(actor string, orderID int64, input UpdateOrderInput) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		actor: actor,
		input: input,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.checkStatus(input.Status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Actor() string { return c.actor }

func (c UpdateOrderCommand) OrderID() int64 { return c.orderID }

func (c UpdateOrderCommand) Input() UpdateOrderInput { return c.input }

func (c *UpdateOrderCommand) setOrderID(id int64) error {
	if err := requireRef("orderId", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) checkStatus(label *string) error {
	if label == nil || strings.TrimSpace(*label) == "" {
		return nil
	}
	_, err := order.ParseStatus(*label)
	return err
}
