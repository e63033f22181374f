// Package metadata is the client's key/value persistence layer. Values are
// opaque byte blobs; a missing key reads as (nil, nil).
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// SetMany writes all pairs atomically: either every key is stored or none.
	SetMany(ctx context.Context, values map[string][]byte) error
	// DeleteMany removes all keys atomically. Missing keys are not an error.
	DeleteMany(ctx context.Context, keys ...string) error
}
