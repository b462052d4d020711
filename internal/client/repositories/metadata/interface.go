// Package metadata is a small key-value repository over the local database.
// The persisted session record and the transient upload-result record both
// live here.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
