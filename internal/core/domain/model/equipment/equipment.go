package equipment

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/textnorm"
)

var ErrEquipmentIsNotConstructed = errors.New("Equipment must be created via NewEquipment or RestoreEquipment")

// Identity is the natural key of an equipment.
type Identity struct {
	serial      *string
	description string
}

// NewIdentity normalizes raw input. ok is false when neither a serial nor a
// description is given.
func NewIdentity(description, serial string) (Identity, bool) {
	id := Identity{
		serial:      textnorm.Optional(textnorm.Serial(serial)),
		description: textnorm.Sentence(description),
	}
	if id.serial == nil && id.description == "" {
		return Identity{}, false
	}
	return id, true
}

func (i Identity) Serial() *string { return i.serial }

func (i Identity) Description() string { return i.description }

// HasSerial reports whether lookups go by serial first.
func (i Identity) HasSerial() bool { return i.serial != nil }

// Key is a stable string form of the identity, used as a cache key.
func (i Identity) Key() string {
	if i.serial != nil {
		return "s:" + *i.serial
	}
	return "d:" + i.description
}

// Details are the editable attributes of an equipment.
type Details struct {
	Type        string
	Brand       string
	Model       string
	Serial      string
	Description string
}

func (d Details) normalize() (Details, error) {
	d.Type = textnorm.Sentence(d.Type)
	d.Brand = textnorm.Collapse(d.Brand)
	d.Model = textnorm.Collapse(d.Model)
	d.Serial = textnorm.Serial(d.Serial)
	d.Description = textnorm.Sentence(d.Description)
	if d.Serial == "" && d.Description == "" {
		return Details{}, errs.NewValueIsRequiredErrorWithCause(
			"description", errors.New("a serial or a description is required"))
	}
	return d, nil
}

// Equipment is a device brought to the shop. It is identified by its serial
// when it has one, otherwise by its description.
type Equipment struct {
	id        int64
	details   Details
	createdAt time.Time

	isConstructed bool
}

// NewEquipment builds an unsaved equipment; the store assigns the id.
func NewEquipment(details Details, now time.Time) (*Equipment, error) {
	normalized, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Equipment{details: normalized, createdAt: now, isConstructed: true}, nil
}

// NewEquipmentFromIdentity builds the minimal equipment created by resolution.
func NewEquipmentFromIdentity(identity Identity, now time.Time) (*Equipment, error) {
	d := Details{Description: identity.description}
	if identity.serial != nil {
		d.Serial = *identity.serial
	}
	return NewEquipment(d, now)
}

// RestoreEquipment rebuilds stored equipment. Details are taken as stored,
// without normalizing them again.
func RestoreEquipment(id int64, details Details, createdAt time.Time) (*Equipment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", id))
	}
	return &Equipment{id: id, details: details, createdAt: createdAt, isConstructed: true}, nil
}

// Validate ensures the equipment was built through NewEquipment or
// RestoreEquipment.
func (e *Equipment) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEquipmentIsNotConstructed
	}
	return nil
}

func (e *Equipment) ID() int64 { return e.id }

func (e *Equipment) Details() Details { return e.details }

func (e *Equipment) Serial() *string { return textnorm.Optional(e.details.Serial) }

func (e *Equipment) Description() string { return e.details.Description }

func (e *Equipment) CreatedAt() time.Time { return e.createdAt }

// Identity returns the natural key the resolver matches on.
func (e *Equipment) Identity() Identity {
	return Identity{serial: e.Serial(), description: e.details.Description}
}

// AssignID records the id given by the store after insert. An equipment
// never changes id.
func (e *Equipment) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", id))
	}
	if e.id != 0 && e.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("equipment already has id %d", e.id))
	}
	e.id = id
	return nil
}

// Edit replaces the details after normalizing them. Ownership is not part of
// the details; relinking goes through the ownership linker.
func (e *Equipment) Edit(details Details) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	e.details = normalized
	return nil
}
