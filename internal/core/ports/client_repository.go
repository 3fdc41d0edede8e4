// Package ports declares what the core needs from the outside world:
// persistence, caching and document rendering.
package ports

import (
	"context"

	"repairshop/internal/core/domain/model/client"
)

// ClientRepository persists clients.
type ClientRepository interface {
	// FindByIdentity matches name exactly and phone null-safely. It returns
	// ObjectNotFoundError when nothing matches.
	FindByIdentity(ctx context.Context, identity client.Identity) (*client.Client, error)

	Get(ctx context.Context, id int64) (*client.Client, error)

	// Add inserts and assigns the id. A unique violation is reported as
	// DuplicateEntityError and leaves the surrounding transaction usable.
	Add(ctx context.Context, c *client.Client) error

	// Update reports DuplicateEntityError when the edit collides with
	// another client's identity.
	Update(ctx context.Context, c *client.Client) error
}
