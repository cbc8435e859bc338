package storage

import (
	"context"
	"errors"
)

// ErrPersist wraps failures writing to or reading from the backing medium.
var ErrPersist = errors.New("storage: persistence failure")

// Medium is the key-value persistence contract the store runs against:
// synchronous, string-valued get/set/remove. Backends are an in-memory map,
// a SQLite file, or a Postgres table.
type Medium interface {
	Persist(ctx context.Context, key, value string) error
	Retrieve(ctx context.Context, key string) (value string, ok bool, err error)
	Clear(ctx context.Context, key string) error
	Close() error
}
