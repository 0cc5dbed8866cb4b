package bbolt

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
	"github.com/cognicore/ordfreq/pkg/ordfreq/store"
)

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	st, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st, path
}

func TestLoadEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	_, found, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	created := time.Date(2024, 5, 6, 7, 8, 9, 10, time.UTC)
	require.NoError(t, st.Save(ctx, store.Snapshot{Terms: []string{"the", "and", "of"}, CreatedAt: created}))

	snap, found, err := st.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	// bbolt iterates keys in byte order.
	assert.Equal(t, []string{"and", "of", "the"}, snap.Terms)
	assert.True(t, snap.CreatedAt.Equal(created))
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	require.NoError(t, st.Save(ctx, store.Snapshot{Terms: []string{"the", "and"}, CreatedAt: time.Now()}))
	require.NoError(t, st.Save(ctx, store.Snapshot{Terms: []string{"with"}, CreatedAt: time.Now()}))

	snap, _, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"with"}, snap.Terms)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	st, path := newTestStore(t)

	require.NoError(t, st.Save(ctx, store.Snapshot{Terms: []string{"the"}, CreatedAt: time.Now()}))
	require.NoError(t, st.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	snap, found, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"the"}, snap.Terms)
}

func TestEmptySnapshotIsFound(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	require.NoError(t, st.Save(ctx, store.Snapshot{Terms: []string{""}, CreatedAt: time.Now()}))

	snap, found, err := st.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, snap.Terms)
}

func TestGarbageFileIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a bbolt file"), 0600))

	_, err := NewStore(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, internalerr.ErrCacheCorrupt)
}
