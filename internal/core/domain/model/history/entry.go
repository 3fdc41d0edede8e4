// Package history models the append-only audit trail of an order.
package history

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/textnorm"
)

// DefaultActor is recorded when the caller does not identify itself.
const DefaultActor = "sistema"

// Action is the code of a lifecycle action.
type Action string

const (
	Created    Action = "created"
	Updated    Action = "updated"
	Finished   Action = "finished"
	PickedUp   Action = "picked_up"
	Reopened   Action = "reopened"
	Suspended  Action = "suspended"
	Duplicated Action = "duplicated"
)

// Validate rejects codes outside the declared actions.
func (a Action) Validate() error {
	switch a {
	case Created, Updated, Finished, PickedUp, Reopened, Suspended, Duplicated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a history action", string(a)))
	}
}

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry records one action performed on an order.
type Entry struct {
	id        kernel.UUID
	orderID   int64
	actor     string
	action    Action
	note      string
	createdAt time.Time

	isConstructed bool
}

// NewEntry records action on orderID at now. A blank actor is stored as
// DefaultActor; the note is optional.
func NewEntry(orderID int64, actor string, action Action, note string, now time.Time) (*Entry, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", fmt.Errorf("%d is not a valid reference", orderID))
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	actor = textnorm.Collapse(actor)
	if actor == "" {
		actor = DefaultActor
	}
	return &Entry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		actor:         actor,
		action:        action,
		note:          textnorm.Collapse(note),
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreEntry rebuilds a stored entry as is.
func RestoreEntry(id kernel.UUID, orderID int64, actor string, action Action, note string, createdAt time.Time) *Entry {
	return &Entry{
		id:            id,
		orderID:       orderID,
		actor:         actor,
		action:        action,
		note:          note,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return e.id.Validate()
}

func (e *Entry) ID() kernel.UUID { return e.id }

func (e *Entry) OrderID() int64 { return e.orderID }

func (e *Entry) Actor() string { return e.actor }

func (e *Entry) Action() Action { return e.action }

func (e *Entry) Note() string { return e.note }

func (e *Entry) CreatedAt() time.Time { return e.createdAt }
