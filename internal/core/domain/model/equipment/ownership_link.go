package equipment

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/textnorm"
)

// DefaultRole is the role given to a link when the caller names none.
const DefaultRole = "propietario"

var ErrOwnershipLinkIsNotConstructed = errors.New("OwnershipLink must be created via NewOwnershipLink or RestoreOwnershipLink")

// OwnershipLink ties an equipment to a client under a role.
type OwnershipLink struct {
	id          int64
	equipmentID int64
	clientID    int64
	role        string
	active      bool
	createdAt   time.Time

	isConstructed bool
}

// NewOwnershipLink returns an active link. An empty role becomes DefaultRole.
func NewOwnershipLink(equipmentID, clientID int64, role string, now time.Time) (*OwnershipLink, error) {
	if err := errors.Join(
		validateRef("equipmentId", equipmentID),
		validateRef("clientId", clientID),
	); err != nil {
		return nil, err
	}
	return &OwnershipLink{
		equipmentID:   equipmentID,
		clientID:      clientID,
		role:          normalizeRole(role),
		active:        true,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOwnershipLink rebuilds a stored link as is.
func RestoreOwnershipLink(
	id, equipmentID, clientID int64,
	role string,
	active bool,
	createdAt time.Time,
) *OwnershipLink {
	return &OwnershipLink{
		id:            id,
		equipmentID:   equipmentID,
		clientID:      clientID,
		role:          role,
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func validateRef(param string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not positive", id))
	}
	return nil
}

func normalizeRole(role string) string {
	if r := textnorm.Collapse(role); r != "" {
		return r
	}
	return DefaultRole
}

func (l *OwnershipLink) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOwnershipLinkIsNotConstructed
	}
	return nil
}

func (l *OwnershipLink) ID() int64 { return l.id }

func (l *OwnershipLink) EquipmentID() int64 { return l.equipmentID }

func (l *OwnershipLink) ClientID() int64 { return l.clientID }

func (l *OwnershipLink) Role() string { return l.role }

func (l *OwnershipLink) IsActive() bool { return l.active }

func (l *OwnershipLink) CreatedAt() time.Time { return l.createdAt }

// AssignID records the id given by the store after insert.
func (l *OwnershipLink) AssignID(id int64) error {
	if err := validateRef("id", id); err != nil {
		return err
	}
	if l.id != 0 && l.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("link already has id %d", l.id))
	}
	l.id = id
	return nil
}

// Reactivate turns a previously deactivated link back on under role.
func (l *OwnershipLink) Reactivate(role string) {
	l.role = normalizeRole(role)
	l.active = true
}

// Deactivate retires the link. The row is kept so prior owners stay on record.
func (l *OwnershipLink) Deactivate() {
	l.active = false
}
