package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := store.Record(ctx, Run{
			ID:             string(rune('a' + i)),
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
			Status:         "success",
			DurationMS:     int64(100 + i),
			FilesFound:     3,
			FilesValid:     2,
			FilesFailed:    1,
			EntriesIndexed: 2,
		})
		require.NoError(t, err)
	}

	runs, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "c", runs[0].ID)
	require.Equal(t, "b", runs[1].ID)
	require.Equal(t, base.Add(2*time.Minute), runs[0].Timestamp)
	require.Equal(t, 2, runs[0].EntriesIndexed)
}

func TestRecentEmptyStore(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestRecentDefaultLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, Run{ID: "x", Timestamp: time.Now(), Status: "fatal"}))

	runs, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "fatal", runs[0].Status)
}

func TestPersistentStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(context.Background(), Run{ID: "r1", Timestamp: time.Now(), Status: "success"}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "r1", runs[0].ID)
}
