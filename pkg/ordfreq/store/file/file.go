// Package file stores the blacklist snapshot as a gob-encoded file next to
// a lock file. Readers take a shared lock and writers an exclusive one, so
// concurrent runs never observe a half-written snapshot.
package file

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store"
)

// formatVersion is bumped whenever the encoded layout changes.
const formatVersion = 1

const lockRetryDelay = 50 * time.Millisecond

type encoded struct {
	Version   int
	Terms     []string
	CreatedAt time.Time
}

// Store implements store.Cache on a single snapshot file.
type Store struct {
	path string
	lock *flock.Flock
}

// New returns a store writing to path. The file is created on first Save.
func New(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

// Close implements store.Cache.
func (s *Store) Close() error {
	return s.lock.Close()
}

// Load implements store.Cache.
func (s *Store) Load(ctx context.Context) (store.Snapshot, bool, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return store.Snapshot{}, false, nil
	}

	if err := s.acquire(ctx, false); err != nil {
		return store.Snapshot{}, false, err
	}
	defer s.lock.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store.Snapshot{}, false, nil
		}
		return store.Snapshot{}, false, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var enc encoded
	if err := gob.NewDecoder(f).Decode(&enc); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("decode %s: %w: %w", s.path, internalerr.ErrCacheCorrupt, err)
	}
	if enc.Version != formatVersion {
		return store.Snapshot{}, false, fmt.Errorf("snapshot version %d, want %d: %w", enc.Version, formatVersion, internalerr.ErrCacheCorrupt)
	}
	if enc.Terms == nil {
		enc.Terms = []string{}
	}
	return store.Snapshot{Terms: enc.Terms, CreatedAt: enc.CreatedAt}, true, nil
}

// Save implements store.Cache. The snapshot is written to a temporary file
// and renamed into place.
func (s *Store) Save(ctx context.Context, snap store.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure snapshot directory: %w", err)
	}

	if err := s.acquire(ctx, true); err != nil {
		return err
	}
	defer s.lock.Unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	enc := encoded{Version: formatVersion, Terms: snap.Terms, CreatedAt: snap.CreatedAt}
	if err := gob.NewEncoder(tmp).Encode(enc); err != nil {
		tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (s *Store) acquire(ctx context.Context, exclusive bool) error {
	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.lock.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = s.lock.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("lock snapshot: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock snapshot: %s is held by another process", s.lock.Path())
	}
	return nil
}
