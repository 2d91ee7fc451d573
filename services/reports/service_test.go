package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/testutil"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/rounds"
	"golfsync-backend/services/rounds/db"

	_ "modernc.org/sqlite"
)

func TestBuildWeeklySummary(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/reports",
		DbSchema: db.Schema,
	})
	defer cleanup()

	store := rounds.NewStore(setup.DB)
	service := NewService(store, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	now := timezone.Now()
	err := store.SaveRunReport(ctx, golf.RunReport{
		RunID:      "run1",
		StartedAt:  now,
		FinishedAt: now.Add(time.Minute),
		SourceCounts: map[golf.Source]int{
			golf.SourceTrackman: 3,
			golf.SourceArccos:   1,
		},
	})
	require.NoError(t, err)
	err = store.SaveRunReport(ctx, golf.RunReport{
		RunID:      "run2",
		StartedAt:  now.Add(time.Second),
		FinishedAt: now.Add(time.Minute),
		SourceCounts: map[golf.Source]int{
			golf.SourceTrackman: 2,
		},
		Errors: []string{"golfer@example.com/arccos: enumerate: listing never loaded"},
	})
	require.NoError(t, err)

	summary, err := service.BuildWeeklySummary(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Cycles)
	require.Equal(t, 5, summary.SourceCounts[golf.SourceTrackman])
	require.Equal(t, 1, summary.SourceCounts[golf.SourceArccos])
	require.Equal(t, 1, summary.ErrorCount)

	body := summary.body()
	require.Contains(t, body, "Cycles run: 2")
	require.Contains(t, body, "Rounds from trackman: 5")
	require.Contains(t, body, "listing never loaded")
}

func TestAlertFailuresSkipsCleanCycles(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/reports",
		DbSchema: db.Schema,
	})
	defer cleanup()

	// no smtp server is configured, so any attempt to actually send
	// would error: a nil return proves these paths short-circuit
	service := NewService(rounds.NewStore(setup.DB), Options{
		Recipients:     []string{"ops@clubhouse.test"},
		AlertOnFailure: true,
	})

	ctx := context.Background()
	err := service.AlertFailures(ctx, golf.RunReport{RunID: "clean"})
	require.NoError(t, err)

	disabled := NewService(rounds.NewStore(setup.DB), Options{
		Recipients: []string{"ops@clubhouse.test"},
	})
	err = disabled.AlertFailures(ctx, golf.RunReport{
		RunID:  "dirty",
		Errors: []string{"something broke"},
	})
	require.NoError(t, err)
}
