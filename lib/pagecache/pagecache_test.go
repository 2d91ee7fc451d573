package pagecache

import (
	"context"
	"testing"
	"time"

	"golfsync-backend/lib/telemetry"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setup(t testing.TB, ttl time.Duration) (Store, func()) {
	cleanupTelemetry := telemetry.SetupForTesting(t, "test:pagecache")

	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)

	store := New(db, ttl)
	return store, func() {
		db.Close()
		cleanupTelemetry()
	}
}

func TestCaptureRoundTrip(t *testing.T) {
	store, cleanup := setup(t, time.Hour)
	defer cleanup()
	ctx := context.Background()

	err := store.Put(ctx, Capture{
		Source:   "trackman",
		Label:    "session_detail",
		Url:      "https://mytrackman.com/sessions/abc123#report",
		Contents: []byte("<html><body>shots</body></html>"),
	})
	require.NoError(t, err)

	// fragment is stripped by url normalization, both spellings hit
	got, err := store.Get(ctx, "trackman", "session_detail", "https://mytrackman.com/sessions/abc123")
	require.NoError(t, err)
	require.Equal(t, []byte("<html><body>shots</body></html>"), got.Contents)
	require.Equal(t, "trackman", got.Source)

	_, err = store.Get(ctx, "trackman", "session_detail", "https://mytrackman.com/sessions/other")
	require.ErrorIs(t, err, CaptureNotFound)
}

func TestCaptureExpiry(t *testing.T) {
	store, cleanup := setup(t, time.Nanosecond)
	defer cleanup()
	ctx := context.Background()

	err := store.Put(ctx, Capture{
		Source:   "arccos",
		Label:    "rounds_list",
		Url:      "https://dashboard.arccosgolf.com/rounds",
		Contents: []byte("<html/>"),
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, "arccos", "rounds_list", "https://dashboard.arccosgolf.com/rounds")
	require.ErrorIs(t, err, CaptureNotFound)
}

func TestListFiltersBySource(t *testing.T) {
	store, cleanup := setup(t, time.Hour)
	defer cleanup()
	ctx := context.Background()

	for _, c := range []Capture{
		{Source: "trackman", Label: "sessions_list", Url: "https://mytrackman.com/sessions", Contents: []byte("a")},
		{Source: "skytrak", Label: "sessions_list", Url: "https://app.skytrakgolf.com/sessions", Contents: []byte("bb")},
	} {
		require.NoError(t, store.Put(ctx, c))
	}

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	onlySkytrak, err := store.List(ctx, "skytrak")
	require.NoError(t, err)
	require.Len(t, onlySkytrak, 1)
	require.Equal(t, "skytrak", onlySkytrak[0].Source)
	require.Equal(t, 2, onlySkytrak[0].Size)
}
