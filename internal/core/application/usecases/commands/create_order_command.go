package commands

import (
	"errors"
	"strings"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderInput is what the counter types when opening an order. Client
// and equipment may come as ids or as raw identity fields to be resolved.
// A blank Status means the default repairing label; zero stamps are filled
// or left unset by the workflow.
type CreateOrderInput struct {
	ClientID    int64
	ClientName  string
	ClientPhone string

	EquipmentID          int64
	EquipmentDescription string
	EquipmentSerial      string

	Fault       string
	Notes       string
	Accessories string
	Repair      string
	SpareParts  string
	Amount      kernel.Money

	Status string

	Intake kernel.Stamp
	Exit   kernel.Stamp
	Return kernel.Stamp
	Pickup kernel.Stamp
}

// CreateOrderCommand opens a repair order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("mostrador", CreateOrderInput{
//	    ClientName:      "Juan Perez",
//	    ClientPhone:     "11 2233-4455",
//	    EquipmentSerial: "SN-001",
//	    Fault:           "no enciende",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor string
	input CreateOrderInput

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(actor string, input CreateOrderInput) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setClient(input),
		command.setEquipment(input),
		command.setStatus(input.Status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.input = input
	return command, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() string { return c.actor }

func (c CreateOrderCommand) Input() CreateOrderInput { return c.input }

func (c *CreateOrderCommand) setClient(in CreateOrderInput) error {
	if in.ClientID < 0 {
		return requireRef("clientId", in.ClientID)
	}
	if in.ClientID == 0 && strings.TrimSpace(in.ClientName) == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	return nil
}

func (c *CreateOrderCommand) setEquipment(in CreateOrderInput) error {
	if in.EquipmentID < 0 {
		return requireRef("equipmentId", in.EquipmentID)
	}
	if in.EquipmentID == 0 &&
		strings.TrimSpace(in.EquipmentDescription) == "" &&
		strings.TrimSpace(in.EquipmentSerial) == "" {
		return errs.NewValueIsRequiredError("equipment")
	}
	return nil
}

func (c *CreateOrderCommand) setStatus(label string) error {
	if strings.TrimSpace(label) == "" {
		return nil
	}
	_, err := order.ParseStatus(label)
	return err
}
