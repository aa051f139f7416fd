package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"ledger-manager/core/directory"
	"ledger-manager/core/storage"
	"ledger-manager/core/utils"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/singleflight"
)

// storageEntry is one element of the catalog JSON array.
// Identifiers made only of digits are sometimes written as JSON numbers.
type storageEntry struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

// StorageSource reads names from a JSON object in the storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
	ttl    time.Duration

	mu    sync.RWMutex
	index map[string]string
	built time.Time
	sf    singleflight.Group
}

// NewStorageSource creates a source over bucket/object. A zero ttl reloads the object on every lookup.
func NewStorageSource(client storage.Client, bucket, object string, ttl time.Duration) *StorageSource {
	return &StorageSource{
		client: client,
		bucket: bucket,
		object: object,
		ttl:    ttl,
	}
}

// Name returns the source kind.
func (s *StorageSource) Name() string {
	return SourceStorage
}

// Lookup returns the name of id from the cached catalog index.
func (s *StorageSource) Lookup(ctx context.Context, id string) (string, bool, error) {
	index, err := s.getOrBuildIndex(ctx)
	if err != nil {
		return "", false, err
	}
	name, ok := index[directory.Normalize(id)]
	return name, ok, nil
}

// Check verifies the bucket and the catalog object exist.
func (s *StorageSource) Check(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	if _, err := s.client.StatObject(ctx, s.bucket, s.object, minio.StatObjectOptions{}); err != nil {
		return fmt.Errorf("catalog object %s not readable: %w", s.object, err)
	}
	return nil
}

// Invalidate drops the cached index so the next lookup downloads the object again.
func (s *StorageSource) Invalidate() {
	s.mu.Lock()
	s.index = nil
	s.mu.Unlock()
}

func (s *StorageSource) fresh() (map[string]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil || s.ttl == 0 || time.Since(s.built) > s.ttl {
		return nil, false
	}
	return s.index, true
}

// getOrBuildIndex returns the cached index or rebuilds it, collapsing concurrent rebuilds.
func (s *StorageSource) getOrBuildIndex(ctx context.Context) (map[string]string, error) {
	if index, ok := s.fresh(); ok {
		return index, nil
	}

	result, err, _ := s.sf.Do(s.object, func() (interface{}, error) {
		// Double-check after winning the flight
		if index, ok := s.fresh(); ok {
			return index, nil
		}

		index, err := s.loadIndex(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.index = index
		s.built = time.Now()
		s.mu.Unlock()

		return index, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(map[string]string), nil
}

func (s *StorageSource) loadIndex(ctx context.Context) (map[string]string, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object %s: %w", s.object, err)
	}
	defer reader.Close()

	var entries []storageEntry
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog object %s: %w", s.object, err)
	}

	index := make(map[string]string, len(entries))
	for _, entry := range entries {
		id := utils.ToString(entry.ID)
		if id == "" || strings.TrimSpace(entry.Name) == "" {
			continue
		}
		key := directory.Normalize(id)
		if _, exists := index[key]; !exists {
			index[key] = entry.Name
		}
	}
	return index, nil
}
