package images

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/internal/domain/repository"
)

// fakeBlobStore serves blobs from a map. Names listed in slow block until the
// context expires.
type fakeBlobStore struct {
	blobs map[string][]byte
	slow  map[string]bool
}

func (s *fakeBlobStore) Store(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.blobs[name] = data
	return name, nil
}

func (s *fakeBlobStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if s.slow[name] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	data, ok := s.blobs[name]
	if !ok {
		return nil, repository.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestResolve_MixedSuccessAndFailure(t *testing.T) {
	store := &fakeBlobStore{
		blobs: map[string][]byte{
			"a.jpg": []byte("aaa"),
			"c.jpg": []byte("ccc"),
		},
	}
	enricher := NewEnricher(store)

	results := enricher.Resolve(context.Background(), []string{"a.jpg", "missing.jpg", "c.jpg"})

	require.Len(t, results, 3)
	assert.Equal(t, "a.jpg", results[0].Name)
	assert.Equal(t, []byte("aaa"), results[0].Data)
	assert.True(t, results[0].OK())

	assert.Equal(t, "missing.jpg", results[1].Name)
	assert.False(t, results[1].OK())
	assert.NotEmpty(t, results[1].Err)

	assert.True(t, results[2].OK())

	successful, failed := Split(results)
	assert.Len(t, successful, 2)
	assert.Len(t, failed, 1)
}

func TestResolve_EmptyInputShortCircuits(t *testing.T) {
	enricher := NewEnricher(&fakeBlobStore{})

	assert.Nil(t, enricher.Resolve(context.Background(), nil))
	assert.Nil(t, enricher.Resolve(context.Background(), []string{}))
}

func TestResolve_PerAssetTimeout(t *testing.T) {
	store := &fakeBlobStore{
		blobs: map[string][]byte{"fast.jpg": []byte("ok")},
		slow:  map[string]bool{"stuck.jpg": true},
	}
	enricher := NewEnricherWithTimeout(store, 50*time.Millisecond)

	start := time.Now()
	results := enricher.Resolve(context.Background(), []string{"fast.jpg", "stuck.jpg"})
	elapsed := time.Since(start)

	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())

	// The stalled asset must not stall the batch past its own timeout.
	assert.Less(t, elapsed, time.Second)
}

func TestResolveSuccessful_DropsFailures(t *testing.T) {
	store := &fakeBlobStore{blobs: map[string][]byte{"a.jpg": []byte("aaa")}}
	enricher := NewEnricher(store)

	results := enricher.ResolveSuccessful(context.Background(), []string{"a.jpg", "missing.jpg"})

	require.Len(t, results, 1)
	assert.Equal(t, "a.jpg", results[0].Name)
}
