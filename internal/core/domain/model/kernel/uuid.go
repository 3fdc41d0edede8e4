package kernel

import (
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("uuid")

// UUID identifies records the store does not number, such as history
// entries. The zero value is invalid.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

func (u UUID) String() string { return u.id.String() }

// Value returns the google/uuid form used by the store.
func (u UUID) Value() uuid.UUID { return u.id }

func (u UUID) IsEqual(other UUID) bool { return u.id == other.id }

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
