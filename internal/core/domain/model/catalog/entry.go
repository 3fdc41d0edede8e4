// Package catalog models the lookup lists filled in while typing an order:
// faults, accessories, spare parts and repairs.
package catalog

import (
	"errors"
	"fmt"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/textnorm"
)

// Kind selects one of the catalog lists.
type Kind string

const (
	Fault     Kind = "fault"
	Accessory Kind = "accessory"
	SparePart Kind = "spare_part"
	Repair    Kind = "repair"
)

// Kinds lists every valid kind.
func Kinds() []Kind {
	return []Kind{Fault, Accessory, SparePart, Repair}
}

// Validate rejects kinds outside Kinds.
func (k Kind) Validate() error {
	switch k {
	case Fault, Accessory, SparePart, Repair:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a catalog kind", string(k)))
	}
}

func (k Kind) String() string { return string(k) }

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Identity is the natural key of an entry: its kind and its matching key.
type Identity struct {
	kind Kind
	name string
	key  string
}

// NewIdentity normalizes a typed name. ok is false when the name is empty.
func NewIdentity(kind Kind, name string) (Identity, bool) {
	n := textnorm.Sentence(name)
	if n == "" {
		return Identity{}, false
	}
	return Identity{kind: kind, name: n, key: textnorm.Key(n)}, true
}

func (i Identity) Kind() Kind { return i.kind }

// Name is the display form stored when the entry is created.
func (i Identity) Name() string { return i.name }

// Key is the case-folded form entries are matched on.
func (i Identity) Key() string { return i.key }

// Entry is one item of a catalog list. Resolution never changes an existing
// entry; only explicit creation sets description and cost.
type Entry struct {
	id          int64
	kind        Kind
	name        string
	key         string
	description string
	cost        *kernel.Money

	isConstructed bool
}

// NewEntry creates an entry from a normalized identity.
//
// Returns:
//   - ValueIsInvalidError for an unknown kind, or for a cost on anything but
//     a spare part
//   - ValueIsRequiredError for an empty name
func NewEntry(identity Identity, description string, cost *kernel.Money) (*Entry, error) {
	if err := identity.kind.Validate(); err != nil {
		return nil, err
	}
	if identity.name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if cost != nil && identity.kind != SparePart {
		return nil, errs.NewValueIsInvalidErrorWithCause("cost", errors.New("only spare parts carry a cost"))
	}
	return &Entry{
		kind:          identity.kind,
		name:          identity.name,
		key:           identity.key,
		description:   textnorm.Sentence(description),
		cost:          cost,
		isConstructed: true,
	}, nil
}

// RestoreEntry rebuilds a stored entry as is.
func RestoreEntry(id int64, kind Kind, name, key, description string, cost *kernel.Money) *Entry {
	return &Entry{
		id:            id,
		kind:          kind,
		name:          name,
		key:           key,
		description:   description,
		cost:          cost,
		isConstructed: true,
	}
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return e.kind.Validate()
}

func (e *Entry) ID() int64 { return e.id }

func (e *Entry) Kind() Kind { return e.kind }

func (e *Entry) Name() string { return e.name }

func (e *Entry) Key() string { return e.key }

func (e *Entry) Description() string { return e.description }

// Cost is set only on spare parts, and only when it was given explicitly.
func (e *Entry) Cost() *kernel.Money { return e.cost }

// AssignID records the id given by the store after insert.
func (e *Entry) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", id))
	}
	e.id = id
	return nil
}
