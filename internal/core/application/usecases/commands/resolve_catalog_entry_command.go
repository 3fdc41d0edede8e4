package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/pkg/guard"
)

var ErrResolveCatalogEntryCommandIsNotConstructed = errors.New(
	"ResolveCatalogEntryCommand must be created via NewResolveCatalogEntryCommand constructor",
)

// ResolveCatalogEntryCommand asks for the id of a fault, accessory, spare part
// or repair by its typed text.
type ResolveCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	kind catalog.Kind
	text string

	guard guard.ConstructorGuard
}

// NewResolveCatalogEntryCommand rejects unknown kinds. Blank text is allowed
// and resolves to no entry.
func NewResolveCatalogEntryCommand(kind catalog.Kind, text string) (ResolveCatalogEntryCommand, error) {
	if err := kind.Validate(); err != nil {
		return ResolveCatalogEntryCommand{}, err
	}
	return ResolveCatalogEntryCommand{
		kind:  kind,
		text:  text,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrResolveCatalogEntryCommandIsNotConstructed)
}

func (c ResolveCatalogEntryCommand) Kind() catalog.Kind { return c.kind }

func (c ResolveCatalogEntryCommand) Text() string { return c.text }
