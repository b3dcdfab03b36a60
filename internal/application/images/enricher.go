package images

import (
	"context"
	"io"
	"time"

	"planora/internal/domain/repository"
)

const defaultFetchTimeout = 10 * time.Second

// Image is one resolved asset. Data is base64-encoded in JSON. A failed
// lookup carries the failure message in Err instead of aborting the batch.
type Image struct {
	Name string `json:"filename"`
	Data []byte `json:"data,omitempty"`
	Err  string `json:"error,omitempty"`
}

// OK reports whether the asset resolved successfully
func (img Image) OK() bool {
	return img.Err == ""
}

// Split separates a result batch into successes and failures
func Split(results []Image) (successful, failed []Image) {
	for _, img := range results {
		if img.OK() {
			successful = append(successful, img)
		} else {
			failed = append(failed, img)
		}
	}
	return successful, failed
}

// Enricher resolves asset names to binary content via the blob store. All
// lookups of one batch run concurrently and are joined before returning;
// each fetch carries its own timeout so one stalled stream cannot stall the
// enclosing request forever.
type Enricher struct {
	store   repository.BlobStore
	timeout time.Duration
}

// NewEnricher creates a new image enricher
func NewEnricher(store repository.BlobStore) *Enricher {
	return &Enricher{
		store:   store,
		timeout: defaultFetchTimeout,
	}
}

// NewEnricherWithTimeout creates an enricher with a custom per-asset timeout
func NewEnricherWithTimeout(store repository.BlobStore, timeout time.Duration) *Enricher {
	return &Enricher{
		store:   store,
		timeout: timeout,
	}
}

// Resolve fetches every named asset. The result always has one entry per
// input name, successes and failures mixed; callers filter as needed. An
// empty input short-circuits without touching the store.
func (e *Enricher) Resolve(ctx context.Context, names []string) []Image {
	if len(names) == 0 {
		return nil
	}

	results := make([]Image, len(names))
	done := make(chan int, len(names))

	for i, name := range names {
		go func(i int, name string) {
			results[i] = e.fetch(ctx, name)
			done <- i
		}(i, name)
	}

	for range names {
		<-done
	}
	return results
}

// ResolveSuccessful fetches every named asset and drops the failures
func (e *Enricher) ResolveSuccessful(ctx context.Context, names []string) []Image {
	successful, _ := Split(e.Resolve(ctx, names))
	return successful
}

func (e *Enricher) fetch(ctx context.Context, name string) Image {
	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		stream, err := e.store.Open(fetchCtx, name)
		if err != nil {
			ch <- result{err: err}
			return
		}
		defer stream.Close()

		data, err := io.ReadAll(stream)
		ch <- result{data: data, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return Image{Name: name, Err: res.err.Error()}
		}
		return Image{Name: name, Data: res.data}
	case <-fetchCtx.Done():
		return Image{Name: name, Err: fetchCtx.Err().Error()}
	}
}
