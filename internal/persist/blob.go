package persist

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/pagegen/pkg/storage"
)

const jsonContentType = "application/json"

// BlobStorage is the subset of storage.System the blob backend needs.
type BlobStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type blobStore struct {
	storage BlobStorage
}

// NewBlob returns a store that keeps each part at {namespace}/{key}.json.
func NewBlob(s BlobStorage) Store {
	return &blobStore{storage: s}
}

func blobKey(namespace, key string) string {
	return path.Join(namespace, key+".json")
}

// Load downloads the parts concurrently. Missing blobs are skipped.
func (b *blobStore) Load(ctx context.Context, namespace string) (*Snapshot, error) {
	var (
		mu    sync.Mutex
		parts = make(map[string][]byte, len(keys))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		g.Go(func() error {
			data, err := b.storage.Get(ctx, blobKey(namespace, key))
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", key, err)
			}

			mu.Lock()
			parts[key] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return decode(parts)
}

func (b *blobStore) Save(ctx context.Context, namespace string, snap *Snapshot) error {
	parts, err := encode(snap)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range parts {
		g.Go(func() error {
			key := blobKey(namespace, p.key)
			if err := b.storage.Put(ctx, key, p.value, jsonContentType); err != nil {
				return fmt.Errorf("save %s: %w", p.key, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (b *blobStore) Delete(ctx context.Context, namespace string) error {
	found := false
	for _, key := range keys {
		err := b.storage.Delete(ctx, blobKey(namespace, key))
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		found = true
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
