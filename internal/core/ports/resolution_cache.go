package ports

import "context"

// ResolutionCache remembers identity key to id resolutions. A miss is
// (0, false, nil). Implementations may be disabled, in which case every
// lookup misses.
type ResolutionCache interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, id int64) error
	Delete(ctx context.Context, key string) error
}
