package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Get when no blob exists at the key.
var ErrObjectNotFound = errors.New("object not found")

// Object is a fetched blob with the content type recorded at save time.
type Object struct {
	Body        []byte
	ContentType string
}

// Storage is a key→blob store. Keys are opaque to the store; the registry
// owns key derivation. Implementations do not retry.
type Storage interface {
	// Save stores the blob at key, overwriting any existing blob.
	Save(ctx context.Context, key string, body io.Reader, contentType string) error

	// Get fetches the blob at key, or ErrObjectNotFound.
	Get(ctx context.Context, key string) (*Object, error)

	// Delete removes the blob at key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
