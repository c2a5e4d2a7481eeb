// Package kv implements the opaque key-value store the session layer
// persists into. Keys in use are "user" (JSON-encoded user record) and
// "token" (opaque session marker).
package kv

import "context"

// Repository is a string-keyed blob store. Get returns (nil, nil) for a
// missing key; absence is meaningful to callers and is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that can additionally run a function against a
// transactional view of itself, so multi-key writes land atomically.
type Store interface {
	Repository
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
