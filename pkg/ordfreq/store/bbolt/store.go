// Package bbolt implements store.Cache using bbolt (embedded B+ tree).
// The snapshot lives in a single "blacklist" bucket: one key per term and a
// created_at stamp in a separate "meta" bucket. Writes are transactional, so
// a crash mid-save leaves the previous snapshot intact.
package bbolt

import (
	"context"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store"
)

// Bucket keys
var (
	bucketTerms  = []byte("blacklist")
	bucketMeta   = []byte("meta")
	keyCreatedAt = []byte("created_at")
)

// Store implements store.Cache backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		if errors.Is(err, bolt.ErrInvalid) || errors.Is(err, bolt.ErrVersionMismatch) || errors.Is(err, bolt.ErrChecksum) {
			return nil, fmt.Errorf("bbolt open: %w: %w", internalerr.ErrCacheCorrupt, err)
		}
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements store.Cache.
// Returns found=false if no snapshot has been saved.
func (s *Store) Load(ctx context.Context) (store.Snapshot, bool, error) {
	var snap store.Snapshot
	found := false

	err := s.db.View(func(tx *bolt.Tx) error {
		mb := tx.Bucket(bucketMeta)
		if mb == nil {
			return nil
		}
		raw := mb.Get(keyCreatedAt)
		if raw == nil {
			return nil
		}
		var created time.Time
		if err := created.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("created_at: %w: %w", internalerr.ErrCacheCorrupt, err)
		}

		snap.CreatedAt = created
		snap.Terms = []string{}
		if tb := tx.Bucket(bucketTerms); tb != nil {
			// Keys are copied by the string conversion; bbolt slices are
			// only valid within tx.
			if err := tb.ForEach(func(k, _ []byte) error {
				snap.Terms = append(snap.Terms, string(k))
				return nil
			}); err != nil {
				return err
			}
		}
		found = true
		return nil
	})
	if err != nil {
		return store.Snapshot{}, false, err
	}
	return snap, found, nil
}

// Save implements store.Cache by replacing both buckets.
func (s *Store) Save(ctx context.Context, snap store.Snapshot) error {
	created, err := snap.CreatedAt.UTC().MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal created_at: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketTerms) != nil {
			if err := tx.DeleteBucket(bucketTerms); err != nil {
				return err
			}
		}
		tb, err := tx.CreateBucket(bucketTerms)
		if err != nil {
			return err
		}
		for _, term := range snap.Terms {
			// bbolt rejects empty keys; an empty term can never match a token.
			if term == "" {
				continue
			}
			if err := tb.Put([]byte(term), nil); err != nil {
				return err
			}
		}

		mb, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		return mb.Put(keyCreatedAt, created)
	})
}
