package repository

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned when no blob exists under the requested name.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is the port for named binary assets (images). Constructed once at
// process start and passed down explicitly to the components that need it.
type BlobStore interface {
	// Store persists the blob under the given name and returns the name.
	Store(ctx context.Context, name string, r io.Reader) (string, error)

	// Open returns a reader for the blob with exactly that name, or
	// ErrBlobNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
