package ordfreq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cognicore/ordfreq/pkg/ordfreq/config"
	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/stoplist"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store/bbolt"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store/file"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store/sqlite"
)

// OpenCache opens the configured snapshot cache. Backend "none" returns a
// nil Cache. A database file too damaged to open is removed and recreated.
func OpenCache(ctx context.Context, cfg config.Cache, logger *slog.Logger) (store.Cache, error) {
	c, err := openCache(ctx, cfg)
	if errors.Is(err, internalerr.ErrCacheCorrupt) {
		if logger != nil {
			logger.Warn("blacklist cache unreadable, recreating", "path", cfg.Path, "error", err)
		}
		if err := removeCache(cfg.Path); err != nil {
			return nil, err
		}
		c, err = openCache(ctx, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return c, nil
}

// removeCache deletes a cache file together with any SQLite WAL and
// shared-memory files left next to it.
func removeCache(path string) error {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove corrupt cache: %w", err)
		}
	}
	return nil
}

func openCache(ctx context.Context, cfg config.Cache) (store.Cache, error) {
	switch cfg.Backend {
	case config.BackendNone, "":
		return nil, nil
	case config.BackendFile:
		return file.New(cfg.Path), nil
	case config.BackendSQLite:
		return sqlite.OpenSQLite(ctx, cfg.Path)
	case config.BackendBbolt:
		return bbolt.NewStore(cfg.Path)
	default:
		return nil, fmt.Errorf("cache backend %q: %w", cfg.Backend, internalerr.ErrInvalidConfig)
	}
}

// LoadBlacklist returns the blacklist described by cfg, from its snapshot
// cache when one exists. rebuild ignores the cache and refreshes it.
func LoadBlacklist(ctx context.Context, cfg config.Config, rebuild bool, logger *slog.Logger) (*stoplist.Manager, store.Status, error) {
	cache, err := OpenCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, 0, err
	}
	if cache != nil {
		defer cache.Close()
	}

	build := func() (*stoplist.Manager, error) {
		return stoplist.Build(cfg.Sources()...)
	}
	return store.LoadOrBuild(ctx, cache, build, store.Options{Force: rebuild, Logger: logger})
}
