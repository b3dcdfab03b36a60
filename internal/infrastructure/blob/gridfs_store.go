package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"planora/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSStore implements repository.BlobStore on a GridFS bucket. Blobs are
// addressed by exact filename.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

// NewGridFSStore creates a blob store over the named GridFS bucket
func NewGridFSStore(database *mongo.Database, bucketName string) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(database, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to create gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

// Store persists the blob under the given name
func (s *GridFSStore) Store(ctx context.Context, name string, r io.Reader) (string, error) {
	if _, err := s.bucket.UploadFromStream(name, r); err != nil {
		return "", fmt.Errorf("failed to upload blob %q: %w", name, err)
	}
	return name, nil
}

// Open returns a reader for the blob with exactly that name
func (s *GridFSStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(name)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, repository.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to open blob %q: %w", name, err)
	}
	return stream, nil
}
