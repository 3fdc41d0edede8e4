package order

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/textnorm"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Draft carries the input of a new order. ClientID and EquipmentID must be
// resolved beforehand. A zero Status means StatusRepairing; zero stamps are
// filled or left unset as the workflow dictates.
type Draft struct {
	ClientID    int64
	EquipmentID int64

	ContactName   string
	ContactPhone  string
	EquipmentText string
	SerialText    string
	Fault         string
	Notes         string
	Accessories   string
	Repair        string
	SpareParts    string
	Amount        kernel.Money

	Status Status

	Intake kernel.Stamp
	Exit   kernel.Stamp
	Return kernel.Stamp
	Pickup kernel.Stamp
}

// Patch carries an edit. Nil fields are left untouched; set stamp halves
// override stored ones.
type Patch struct {
	ClientID    *int64
	EquipmentID *int64

	ContactName   *string
	ContactPhone  *string
	EquipmentText *string
	SerialText    *string
	Fault         *string
	Notes         *string
	Accessories   *string
	Repair        *string
	SpareParts    *string
	Amount        *kernel.Money

	Status *Status

	Intake kernel.Stamp
	Exit   kernel.Stamp
	Return kernel.Stamp
	Pickup kernel.Stamp
}

// Snapshot is the full persisted state of an order.
type Snapshot struct {
	ID          int64
	ClientID    int64
	EquipmentID int64

	ContactName   string
	ContactPhone  string
	EquipmentText string
	SerialText    string
	Fault         string
	Notes         string
	Accessories   string
	Repair        string
	SpareParts    string
	Amount        kernel.Money

	Status        Status
	SuspendReason string

	Intake kernel.Stamp
	Exit   kernel.Stamp
	Return kernel.Stamp
	Pickup kernel.Stamp

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order is the repair order aggregate. Its id is the order number shown to
// customers and is assigned by the store on insert.
type Order struct {
	state Snapshot

	isConstructed bool
}

// NewOrder opens an order. The intake stamp is filled from now where unset.
//
// Parameters:
//   - d: the order input; ClientID and EquipmentID must already be resolved
//   - now: the instant used for the intake stamp and the audit timestamps
//
// Returns:
//   - *Order: the new order, without an id until the store assigns one
//   - error: ValueIsRequiredError for a missing reference, ValueIsInvalidError
//     when the requested status is not an in-progress one
//
// Free text is normalized on the way in: sentence case for descriptions,
// digits only for the contact phone, upper case without spaces for serials.
func NewOrder(d Draft, now time.Time) (*Order, error) {
	status := d.Status
	if status.IsZero() {
		status = StatusRepairing
	}
	if !status.IsInProgress() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not an in-progress status", status))
	}

	if err := errors.Join(
		validateRef("clientId", d.ClientID),
		validateRef("equipmentId", d.EquipmentID),
	); err != nil {
		return nil, err
	}

	o := &Order{
		state: Snapshot{
			ClientID:    d.ClientID,
			EquipmentID: d.EquipmentID,
			Amount:      d.Amount,
			Status:      status,
			Intake:      d.Intake.Fill(now),
			Exit:        d.Exit,
			Return:      d.Return,
			Pickup:      d.Pickup,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		isConstructed: true,
	}
	o.setContact(d.ContactName, d.ContactPhone)
	o.setEquipmentText(d.EquipmentText, d.SerialText)
	o.state.Fault = textnorm.Sentence(d.Fault)
	o.state.Notes = textnorm.Sentence(d.Notes)
	o.state.Accessories = textnorm.Sentence(d.Accessories)
	o.state.Repair = textnorm.Sentence(d.Repair)
	o.state.SpareParts = textnorm.Sentence(d.SpareParts)

	return o, nil
}

// RestoreOrder rebuilds a persisted order as is.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		validateRef("id", s.ID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Order{state: s, isConstructed: true}, nil
}

func validateRef(param string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause(param, fmt.Errorf("%d is not a valid reference", id))
	}
	return nil
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value order
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Snapshot returns a copy of the order state.
func (o *Order) Snapshot() Snapshot { return o.state }

// ID returns the order number. It is zero until the order is stored.
func (o *Order) ID() int64 { return o.state.ID }

// ClientID returns the client the order is billed to.
func (o *Order) ClientID() int64 { return o.state.ClientID }

// EquipmentID returns the equipment under repair. It never changes after
// creation.
func (o *Order) EquipmentID() int64 { return o.state.EquipmentID }

// Status returns the current status.
func (o *Order) Status() Status { return o.state.Status }

// SuspendReason returns the motive of the last suspension, or "" when the
// order is not suspended.
func (o *Order) SuspendReason() string { return o.state.SuspendReason }

// Intake returns when the equipment was received.
func (o *Order) Intake() kernel.Stamp { return o.state.Intake }

// Exit returns when the repair was first finished.
func (o *Order) Exit() kernel.Stamp { return o.state.Exit }

// Return returns when a finished order first went back to repair.
func (o *Order) Return() kernel.Stamp { return o.state.Return }

// Pickup returns when the client took the equipment away.
func (o *Order) Pickup() kernel.Stamp { return o.state.Pickup }

// Amount returns the quoted price.
func (o *Order) Amount() kernel.Money { return o.state.Amount }

// UpdatedAt returns the instant of the last change.
func (o *Order) UpdatedAt() time.Time { return o.state.UpdatedAt }

// AssignID records the number given by the store after insert.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", id))
	}
	if o.state.ID != 0 && o.state.ID != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order already has id %d", o.state.ID))
	}
	o.state.ID = id
	return nil
}

// Edit applies a field edit and, when the patch carries a status, a plain
// status change. On error the order is left untouched.
func (o *Order) Edit(p Patch, now time.Time) error {
	next := *o

	if p.EquipmentID != nil && *p.EquipmentID != next.state.EquipmentID {
		return errs.NewValueIsInvalidErrorWithCause("equipmentId",
			fmt.Errorf("equipment %d of order %d cannot be changed to %d",
				next.state.EquipmentID, next.state.ID, *p.EquipmentID))
	}
	if p.ClientID != nil {
		if err := validateRef("clientId", *p.ClientID); err != nil {
			return err
		}
		next.state.ClientID = *p.ClientID
	}

	next.applyText(p)
	if p.Amount != nil {
		next.state.Amount = *p.Amount
	}

	next.state.Intake = next.state.Intake.Override(p.Intake)
	next.state.Exit = next.state.Exit.Override(p.Exit)
	next.state.Return = next.state.Return.Override(p.Return)
	next.state.Pickup = next.state.Pickup.Override(p.Pickup)

	if p.Status != nil {
		effect, err := next.state.Status.changeTo(*p.Status)
		if err != nil {
			return err
		}
		if next.state.Status.kind == Suspended && p.Status.kind != Suspended {
			next.state.SuspendReason = ""
		}
		next.state.Status = *p.Status
		next.stamp(effect, now)
	}

	next.state.UpdatedAt = now
	*o = next
	return nil
}

func (o *Order) applyText(p Patch) {
	if p.ContactName != nil || p.ContactPhone != nil {
		name, phone := o.state.ContactName, o.state.ContactPhone
		if p.ContactName != nil {
			name = *p.ContactName
		}
		if p.ContactPhone != nil {
			phone = *p.ContactPhone
		}
		o.setContact(name, phone)
	}
	if p.EquipmentText != nil || p.SerialText != nil {
		text, serial := o.state.EquipmentText, o.state.SerialText
		if p.EquipmentText != nil {
			text = *p.EquipmentText
		}
		if p.SerialText != nil {
			serial = *p.SerialText
		}
		o.setEquipmentText(text, serial)
	}
	setSentence(&o.state.Fault, p.Fault)
	setSentence(&o.state.Notes, p.Notes)
	setSentence(&o.state.Accessories, p.Accessories)
	setSentence(&o.state.Repair, p.Repair)
	setSentence(&o.state.SpareParts, p.SpareParts)
}

func setSentence(dst *string, v *string) {
	if v != nil {
		*dst = textnorm.Sentence(*v)
	}
}

func (o *Order) setContact(name, phone string) {
	o.state.ContactName = textnorm.Sentence(name)
	o.state.ContactPhone = textnorm.Digits(phone)
}

func (o *Order) setEquipmentText(text, serial string) {
	o.state.EquipmentText = textnorm.Sentence(text)
	o.state.SerialText = textnorm.Serial(serial)
}

func (o *Order) stamp(effect stampEffect, now time.Time) {
	switch effect {
	case stampExit:
		o.state.Exit = o.state.Exit.Fill(now)
	case stampReturn:
		o.state.Return = o.state.Return.Fill(now)
	case stampPickup:
		o.state.Pickup = o.state.Pickup.Fill(now)
	case noStamp:
	}
}

// Finish marks an in-progress order as done and stamps its exit.
func (o *Order) Finish(now time.Time) error {
	next, effect, err := o.state.Status.finish()
	if err != nil {
		return err
	}
	o.state.Status = next
	o.stamp(effect, now)
	o.state.UpdatedAt = now
	return nil
}

// MarkPickedUp records that the customer took a done order away.
func (o *Order) MarkPickedUp(now time.Time) error {
	next, effect, err := o.state.Status.pickup()
	if err != nil {
		return err
	}
	o.state.Status = next
	o.stamp(effect, now)
	o.state.UpdatedAt = now
	return nil
}

// Reopen sends a done or picked-up order back to repair. A note explaining
// why is mandatory.
func (o *Order) Reopen(note string, now time.Time) error {
	if textnorm.Collapse(note) == "" {
		return errs.NewValueIsRequiredError("note")
	}
	next, effect, err := o.state.Status.reopen()
	if err != nil {
		return err
	}
	o.state.Status = next
	o.stamp(effect, now)
	o.state.UpdatedAt = now
	return nil
}

// Suspend parks the order with a mandatory motive. Suspending an order that
// is already suspended replaces the motive.
//
// Returns:
//   - ValueIsRequiredError when motive is blank
//   - InvalidTransitionError when the order was picked up
func (o *Order) Suspend(motive string, now time.Time) error {
	motive = textnorm.Sentence(motive)
	if motive == "" {
		return errs.NewValueIsRequiredError("motive")
	}
	next, err := o.state.Status.suspend()
	if err != nil {
		return err
	}
	o.state.Status = next
	o.state.SuspendReason = motive
	o.state.UpdatedAt = now
	return nil
}

// Duplicate copies the descriptive fields into a fresh order that starts its
// lifecycle over: default status, intake now, no other stamps.
func (o *Order) Duplicate(now time.Time) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	s := o.state
	return &Order{
		state: Snapshot{
			ClientID:      s.ClientID,
			EquipmentID:   s.EquipmentID,
			ContactName:   s.ContactName,
			ContactPhone:  s.ContactPhone,
			EquipmentText: s.EquipmentText,
			SerialText:    s.SerialText,
			Fault:         s.Fault,
			Notes:         s.Notes,
			Accessories:   s.Accessories,
			Repair:        s.Repair,
			SpareParts:    s.SpareParts,
			Amount:        s.Amount,
			Status:        StatusRepairing,
			Intake:        kernel.StampAt(now),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		isConstructed: true,
	}, nil
}
