package secrets

import "context"

// Store is a key/value secret store. Set overwrites. Get reports whether the
// key exists; Delete of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
