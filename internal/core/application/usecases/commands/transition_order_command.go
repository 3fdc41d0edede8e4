package commands

import (
	"errors"
	"fmt"
	"strings"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// Action is an explicit lifecycle action on an order.
type Action string

const (
	ActionFinish    Action = "finish"
	ActionPickup    Action = "pickup"
	ActionReopen    Action = "reopen"
	ActionSuspend   Action = "suspend"
	ActionDuplicate Action = "duplicate"
)

func (a Action) Validate() error {
	switch a {
	case ActionFinish, ActionPickup, ActionReopen, ActionSuspend, ActionDuplicate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not an order action", string(a)))
	}
}

// TransitionOrderCommand applies an action to an order. Note is the reopen
// note or the suspend motive and is required by those two actions.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	actor   string
	orderID int64
	action  Action
	note    string

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(actor string, orderID int64, action Action, note string) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAction(action, note),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) Actor() string { return c.actor }

func (c TransitionOrderCommand) OrderID() int64 { return c.orderID }

func (c TransitionOrderCommand) Action() Action { return c.action }

func (c TransitionOrderCommand) Note() string { return c.note }

func (c *TransitionOrderCommand) setOrderID(id int64) error {
	if err := requireRef("orderId", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *TransitionOrderCommand) setAction(action Action, note string) error {
	if err := action.Validate(); err != nil {
		return err
	}
	note = strings.TrimSpace(note)
	switch {
	case action == ActionReopen && note == "":
		return errs.NewValueIsRequiredError("note")
	case action == ActionSuspend && note == "":
		return errs.NewValueIsRequiredError("motive")
	}
	c.action = action
	c.note = note
	return nil
}
