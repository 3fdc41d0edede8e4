package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/textnorm"
)

// Kind is the behavioral class of a status. Every label belongs to exactly
// one kind, and transition rules are written in terms of kinds.
type Kind int

const (
	// Unknown catches uninitialized statuses.
	Unknown Kind = iota
	// InProgress covers work on site and at any external workshop. Orders of
	// this kind can be finished, suspended or moved between workshops.
	InProgress

	// Done means the repair is over and the equipment waits for the client.
	// Only done orders can be picked up.
	Done

	// Suspended parks the order with a motive until it is resumed.
	Suspended

	// PickedUp means the client took the equipment away. It ends the normal
	// flow; only an explicit reopen leaves it.
	PickedUp
)

// String returns the kind code exposed to API callers, e.g. "IN_PROGRESS".
func (k Kind) String() string {
	switch k {
	case InProgress:
		return "IN_PROGRESS"
	case Done:
		return "DONE"
	case Suspended:
		return "SUSPENDED"
	case PickedUp:
		return "PICKED_UP"
	default:
		return "UNKNOWN"
	}
}

// Labels stored on orders. Every in-progress label starts with "EN ".
const (
	// LabelRepairing is the default in-progress label: work on site.
	LabelRepairing = "EN REPARACION"
	LabelDone      = "TERMINADA"
	LabelSuspended = "SUSPENDIDA"
	LabelPickedUp  = "RETIRADA"

	inProgressPrefix = "EN "
)

// Status is the label shown on an order together with its kind.
//
//	IN_PROGRESS ──finish──> DONE ──pickup──> PICKED_UP
//	  ^    ^                 │                  │
//	  │    └──────edit───────┘                  │
//	  │    └───────────reopen(note)─────────────┘
//	resume
//	  │
//	SUSPENDED <── suspend(motive), from anything but PICKED_UP
type Status struct {
	kind  Kind
	label string
}

// The statuses with fixed labels. StatusRepairing is where new, duplicated
// and reopened orders start.
var (
	StatusRepairing = Status{kind: InProgress, label: LabelRepairing}
	StatusDone      = Status{kind: Done, label: LabelDone}
	StatusSuspended = Status{kind: Suspended, label: LabelSuspended}
	StatusPickedUp  = Status{kind: PickedUp, label: LabelPickedUp}
)

// ParseStatus maps a stored or typed label to its status. Any label starting
// with "EN " is in progress; use a StatusCatalog to restrict workshops.
func ParseStatus(label string) (Status, error) {
	l := textnorm.Label(label)
	switch {
	case l == "":
		return Status{}, errs.NewValueIsRequiredError("status")
	case l == LabelDone:
		return StatusDone, nil
	case l == LabelSuspended:
		return StatusSuspended, nil
	case l == LabelPickedUp:
		return StatusPickedUp, nil
	case strings.HasPrefix(l, inProgressPrefix) && len(l) > len(inProgressPrefix):
		return Status{kind: InProgress, label: l}, nil
	default:
		return Status{}, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", label))
	}
}

// Kind returns the behavioral class of the status.
func (s Status) Kind() Kind { return s.kind }

// Label returns the normalized label stored on the order.
func (s Status) Label() string { return s.label }

// String returns the label, or "UNKNOWN" for the zero status.
func (s Status) String() string {
	if s.label == "" {
		return Unknown.String()
	}
	return s.label
}

// IsZero reports whether the status was never set. Callers treat it as
// "use the default".
func (s Status) IsZero() bool { return s.kind == Unknown }

// IsInProgress reports whether the order is being worked on, here or at an
// external workshop. It is the single place the label family is classified.
func (s Status) IsInProgress() bool { return s.kind == InProgress }

// Equal compares kind and label. Two workshops are different statuses even
// though they share a kind.
func (s Status) Equal(other Status) bool {
	return s.kind == other.kind && s.label == other.label
}

// Validate checks that the status was built by ParseStatus or is one of the
// predefined values.
//
// Returns:
//   - nil if the status carries a kind and a label
//   - ValueIsInvalidError for the zero status
func (s Status) Validate() error {
	if s.kind == Unknown || s.label == "" {
		return errs.NewValueIsInvalidErrorWithCause("status", errors.New("status is not set"))
	}
	return nil
}

// CanChangeTo reports whether a plain status edit from s to to is allowed.
//
// Returns:
//   - nil when the edit is legal, including editing to the same status
//   - InvalidTransitionError when the change needs the suspend or reopen
//     action, or when picking up an order that is not done
func (s Status) CanChangeTo(to Status) error {
	_, err := s.changeTo(to)
	return err
}

// stampEffect names the stamp a transition fills in.
type stampEffect int

const (
	noStamp stampEffect = iota
	stampExit
	stampReturn
	stampPickup
)

// changeTo checks a plain status edit and returns the stamp it triggers.
// Suspending and reopening a picked-up order need their own actions.
func (s Status) changeTo(to Status) (stampEffect, error) {
	if err := errors.Join(s.Validate(), to.Validate()); err != nil {
		return noStamp, err
	}
	if s.Equal(to) {
		return noStamp, nil
	}

	switch {
	case to.kind == PickedUp:
		return s.pickupEffect()
	case to.kind == Suspended:
		return noStamp, s.rejectTo(to, "use the suspend action")
	case s.kind == PickedUp:
		return noStamp, s.rejectTo(to, "use the reopen action")
	}

	switch s.kind {
	case InProgress:
		if to.kind == Done {
			return stampExit, nil
		}
		return noStamp, nil
	case Done:
		return stampReturn, nil
	case Suspended:
		if to.kind == InProgress {
			return noStamp, nil
		}
	}
	return noStamp, s.rejectTo(to, "")
}

func (s Status) pickupEffect() (stampEffect, error) {
	if s.kind != Done {
		return noStamp, s.rejectTo(StatusPickedUp, "only finished orders can be picked up")
	}
	return stampPickup, nil
}

// finish moves an in-progress order to DONE.
func (s Status) finish() (Status, stampEffect, error) {
	if s.kind != InProgress {
		return Status{}, noStamp, s.rejectTo(StatusDone, "only orders in progress can be finished")
	}
	return StatusDone, stampExit, nil
}

// pickup moves a DONE order to PICKED_UP.
func (s Status) pickup() (Status, stampEffect, error) {
	effect, err := s.pickupEffect()
	if err != nil {
		return Status{}, noStamp, err
	}
	return StatusPickedUp, effect, nil
}

// reopen sends a DONE or PICKED_UP order back to the default in-progress label.
func (s Status) reopen() (Status, stampEffect, error) {
	switch s.kind {
	case Done:
		return StatusRepairing, stampReturn, nil
	case PickedUp:
		return StatusRepairing, noStamp, nil
	default:
		return Status{}, noStamp, s.rejectTo(StatusRepairing, "only finished or picked up orders can be reopened")
	}
}

// suspend parks an order that has not been picked up yet. Suspending a
// suspended order is allowed so that its motive can be replaced.
func (s Status) suspend() (Status, error) {
	if s.kind == PickedUp || s.kind == Unknown {
		return Status{}, s.rejectTo(StatusSuspended, "")
	}
	return StatusSuspended, nil
}

func (s Status) rejectTo(to Status, reason string) error {
	if reason == "" {
		return errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return errs.NewInvalidTransitionErrorWithCause(s.String(), to.String(), errors.New(reason))
}

// DefaultWorkshopLabels are the external workshops known out of the box. A
// status file given at startup replaces them.
func DefaultWorkshopLabels() []string {
	return []string{
		"EN SOS",
		"EN WERTECH",
		"EN EKON",
		"EN AIR",
		"EN SERVIPRINT",
		"EN NICO GORI",
	}
}

// StatusCatalog is the closed set of labels accepted from callers: the
// configured in-progress labels plus the three fixed ones.
type StatusCatalog struct {
	inProgress []string
}

// NewStatusCatalog accepts the default repairing label plus the given
// workshop labels, each of which must start with "EN ".
func NewStatusCatalog(workshops []string) (*StatusCatalog, error) {
	labels := []string{LabelRepairing}
	for _, w := range workshops {
		st, err := ParseStatus(w)
		if err != nil {
			return nil, err
		}
		if !st.IsInProgress() {
			return nil, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an in-progress label", w))
		}
		if !slices.Contains(labels, st.label) {
			labels = append(labels, st.label)
		}
	}
	return &StatusCatalog{inProgress: labels}, nil
}

// DefaultStatusCatalog uses DefaultWorkshopLabels.
func DefaultStatusCatalog() *StatusCatalog {
	c, err := NewStatusCatalog(DefaultWorkshopLabels())
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve parses label and rejects in-progress labels outside the catalog.
func (c *StatusCatalog) Resolve(label string) (Status, error) {
	st, err := ParseStatus(label)
	if err != nil {
		return Status{}, err
	}
	if st.IsInProgress() && !slices.Contains(c.inProgress, st.label) {
		return Status{}, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a configured workshop", st.label))
	}
	return st, nil
}

// Labels lists the in-progress labels first, then the fixed ones.
func (c *StatusCatalog) Labels() []string {
	out := slices.Clone(c.inProgress)
	return append(out, LabelDone, LabelSuspended, LabelPickedUp)
}
