package kv

import "context"

// Store is the backing key-value persistence medium: a plain get/set-by-key
// store with no transactions or schema. Callers serialize whole state blobs
// into it and must treat read failures as "no prior data".
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
