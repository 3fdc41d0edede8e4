package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/catalog"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrCreateCatalogEntryCommandIsNotConstructed = errors.New(
	"CreateCatalogEntryCommand must be created via NewCreateCatalogEntryCommand constructor",
)

// CreateCatalogEntryCommand adds an item to one of the catalog lists. Only
// spare parts carry a cost.
type CreateCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	identity    catalog.Identity
	description string
	cost        *kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateCatalogEntryCommand(
	kind catalog.Kind, name, description string, cost *kernel.Money,
) (CreateCatalogEntryCommand, error) {
	if err := kind.Validate(); err != nil {
		return CreateCatalogEntryCommand{}, err
	}
	identity, ok := catalog.NewIdentity(kind, name)
	if !ok {
		return CreateCatalogEntryCommand{}, errs.NewValueIsRequiredError("name")
	}
	if cost != nil && kind != catalog.SparePart {
		return CreateCatalogEntryCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"cost", errors.New("only spare parts carry a cost"))
	}
	return CreateCatalogEntryCommand{
		identity:    identity,
		description: description,
		cost:        cost,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCatalogEntryCommandIsNotConstructed)
}

func (c CreateCatalogEntryCommand) Identity() catalog.Identity { return c.identity }

func (c CreateCatalogEntryCommand) Description() string { return c.description }

func (c CreateCatalogEntryCommand) Cost() *kernel.Money { return c.cost }
