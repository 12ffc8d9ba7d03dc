// Package store persists the catalog document as an opaque JSON blob in
// Redis. The core treats persistence as fire-and-forget: failures are
// surfaced as *PersistenceError but never interpreted.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

// DefaultKey is the blob key holding the single catalog document.
const DefaultKey = "main"

// PersistenceError wraps an opaque failure from the persistence backend.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store reads and writes the catalog blob.
type Store struct {
	client *redis.Client
	prefix string
	key    string
}

// New creates a Store using the given Redis client. Keys are written as
// prefix+key.
func New(client *redis.Client, prefix, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		client: client,
		prefix: prefix,
		key:    key,
	}
}

// Load retrieves the stored document. The second return value reports
// whether a document was present.
func (s *Store) Load(ctx context.Context) (*domain.Catalog, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, &PersistenceError{Op: "load", Err: err}
	}

	var c domain.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, false, &PersistenceError{Op: "decode", Err: err}
	}
	return &c, true, nil
}

// Save writes the document, replacing any previous blob. No TTL: the
// document is the system of record, not a cache entry.
func (s *Store) Save(ctx context.Context, c domain.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.client.Set(ctx, s.prefix+s.key, data, 0).Err(); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
