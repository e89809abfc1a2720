package ports

import "context"

// KeyValueReader reads string values by key
type KeyValueReader interface {
	// Get returns the value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)
}

// KeyValueWriter writes and removes string values by key
type KeyValueWriter interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key, value string) error
}

// KeyValueReadWriter reads and writes values by key
type KeyValueReadWriter interface {
	KeyValueReader
	KeyValueWriter
}

// KeyValueStore is the composite interface
type KeyValueStore interface {
	KeyValueReadWriter
	Close() error
}
