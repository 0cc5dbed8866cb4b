package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/stoplist"
)

// Cache persists blacklist snapshots between runs
type Cache interface {
	// Load returns the stored snapshot. found is false when nothing has been
	// saved yet. An unreadable snapshot yields an error wrapping
	// internalerr.ErrCacheCorrupt.
	Load(ctx context.Context) (snap Snapshot, found bool, err error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}

// Snapshot is a saved blacklist
type Snapshot struct {
	Terms     []string
	CreatedAt time.Time
}

// Status reports where a blacklist came from
type Status int

const (
	StatusLoaded  Status = iota // read from the cache
	StatusBuilt                 // built from sources and saved
	StatusRebuilt               // cache was corrupt, rebuilt from sources
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusBuilt:
		return "built"
	case StatusRebuilt:
		return "rebuilt"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// BuildFunc builds a blacklist from its sources
type BuildFunc func() (*stoplist.Manager, error)

// Options configures LoadOrBuild
type Options struct {
	Force  bool // ignore any stored snapshot
	Logger *slog.Logger
	Now    func() time.Time
}

// LoadOrBuild returns the cached blacklist if one exists, otherwise builds
// it and saves a snapshot. A corrupt snapshot is logged and rebuilt. A nil
// cache always builds. Save failures are logged, not returned: the freshly
// built blacklist is still usable.
func LoadOrBuild(ctx context.Context, c Cache, build BuildFunc, opts Options) (*stoplist.Manager, Status, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	status := StatusBuilt
	if c != nil && !opts.Force {
		snap, found, err := c.Load(ctx)
		switch {
		case errors.Is(err, internalerr.ErrCacheCorrupt):
			logger.Warn("blacklist snapshot unreadable, rebuilding", "error", err)
			status = StatusRebuilt
		case err != nil:
			return nil, 0, fmt.Errorf("load blacklist snapshot: %w", err)
		case found:
			logger.Debug("blacklist snapshot loaded", "terms", len(snap.Terms), "created_at", snap.CreatedAt)
			return stoplist.NewManager(snap.Terms), StatusLoaded, nil
		}
	}

	m, err := build()
	if err != nil {
		return nil, 0, err
	}

	if c != nil {
		snap := Snapshot{Terms: m.All(), CreatedAt: now().UTC()}
		if err := c.Save(ctx, snap); err != nil {
			logger.Warn("blacklist snapshot not saved", "error", err)
		} else {
			logger.Debug("blacklist snapshot saved", "terms", len(snap.Terms))
		}
	}
	return m, status, nil
}
