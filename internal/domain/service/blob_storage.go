package service

import (
	"context"
	"time"
)

// BlobStorage stores raw image bytes under caller-supplied keys. It owns
// no metadata.
type BlobStorage interface {
	// PutBytes overwrites any existing object at key.
	PutBytes(ctx context.Context, key string, data []byte, contentType string) error
	// Delete is idempotent; deleting an absent object is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited signed read URL for key. It does
	// not verify the object exists.
	PresignGet(ctx context.Context, key string, expiresIn time.Duration) (string, error)
	Close() error
}
