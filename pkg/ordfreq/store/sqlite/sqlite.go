package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store"
)

// sqliteStore implements the store.Cache interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
// A file that is not a SQLite database yields internalerr.ErrCacheCorrupt.
func OpenSQLite(ctx context.Context, path string) (store.Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, classify(err)
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, classify(err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS stoplist (
	token TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS snapshot_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Load returns the stored snapshot. The snapshot exists once created_at has
// been written; an empty stoplist with a timestamp is a valid snapshot.
func (s *sqliteStore) Load(ctx context.Context) (store.Snapshot, bool, error) {
	var created string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key='created_at'`).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, classify(err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return store.Snapshot{}, false, fmt.Errorf("snapshot timestamp %q: %w", created, internalerr.ErrCacheCorrupt)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT token FROM stoplist ORDER BY token`)
	if err != nil {
		return store.Snapshot{}, false, classify(err)
	}
	defer rows.Close()

	snap := store.Snapshot{CreatedAt: createdAt, Terms: []string{}}
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return store.Snapshot{}, false, classify(err)
		}
		snap.Terms = append(snap.Terms, tok)
	}
	if err := rows.Err(); err != nil {
		return store.Snapshot{}, false, classify(err)
	}
	return snap, true, nil
}

// Save replaces the stopword set in a single transaction.
func (s *sqliteStore) Save(ctx context.Context, snap store.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stoplist`); err != nil {
		return err
	}

	if len(snap.Terms) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO stoplist (token) VALUES (?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, tok := range snap.Terms {
			if _, err := stmt.ExecContext(ctx, tok); err != nil {
				return err
			}
		}
	}

	const meta = `
INSERT INTO snapshot_meta (key, value) VALUES ('created_at', ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value;
`
	if _, err := tx.ExecContext(ctx, meta, snap.CreatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	return tx.Commit()
}

// classify marks errors caused by a damaged database file as corrupt.
func classify(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_CORRUPT:
			return fmt.Errorf("sqlite: %w: %w", internalerr.ErrCacheCorrupt, err)
		}
	}
	return err
}
