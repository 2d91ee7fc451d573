package rounds

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/testutil"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/rounds/db"

	_ "modernc.org/sqlite"
)

func ptr[T any](v T) *T {
	return &v
}

func practiceBundle(userID int64, nativeID string, carry float64) golf.Bundle {
	return golf.Bundle{
		Round: golf.Round{
			UserID:         userID,
			Date:           time.Date(2024, 6, 1, 14, 30, 0, 0, timezone.Location),
			CourseName:     "Trackman Session",
			Source:         golf.SourceTrackman,
			SourceNativeID: nativeID,
			Notes:          "Trackman Session ID: " + nativeID,
		},
		Holes: []golf.Hole{{
			Number: 1,
			Par:    4,
			Shots: []golf.Shot{
				{Number: 1, Club: "Driver", FromLocation: "range", ToLocation: "range", CarryDistance: ptr(carry), TotalDistance: ptr(carry + 15)},
				{Number: 2, Club: "7-Iron", FromLocation: "range", ToLocation: "range", CarryDistance: ptr(150.0)},
			},
		}},
		Stats: &golf.Stats{
			AverageDriveYards: ptr(carry + 15),
			Extended: map[string]any{
				"shot_count":  2.0,
				"data_source": "trackman",
			},
		},
	}
}

func TestUpsertRoundIdempotence(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/rounds:idempotence",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	userID, err := store.CreateUser(ctx, golf.User{Email: "golfer@example.com"})
	require.NoError(t, err)

	first, err := store.UpsertRound(ctx, practiceBundle(userID, "8231", 250))
	require.NoError(t, err)

	{
		// same unit again, nothing changed
		second, err := store.UpsertRound(ctx, practiceBundle(userID, "8231", 250))
		require.NoError(t, err)
		require.Equal(t, first, second)

		all, err := store.ListRounds(ctx, userID)
		require.NoError(t, err)
		require.Len(t, all, 1)
	}
	{
		// same unit rescraped with drifted values, children replaced whole
		third, err := store.UpsertRound(ctx, practiceBundle(userID, "8231", 260))
		require.NoError(t, err)
		require.Equal(t, first, third)

		bundle, err := store.GetBundle(ctx, third)
		require.NoError(t, err)
		require.Len(t, bundle.Holes, 1)
		require.Len(t, bundle.Holes[0].Shots, 2)
		require.Equal(t, 260.0, *bundle.Holes[0].Shots[0].CarryDistance)
		require.Equal(t, 275.0, *bundle.Holes[0].Shots[0].TotalDistance)
	}
	{
		// a different native id is a different unit
		other, err := store.UpsertRound(ctx, practiceBundle(userID, "8232", 250))
		require.NoError(t, err)
		require.NotEqual(t, first, other)

		all, err := store.ListRounds(ctx, userID)
		require.NoError(t, err)
		require.Len(t, all, 2)
	}
	{
		// a scraped round is findable by native id alone, the caller
		// doesn't have to know which source produced it
		id, err := store.FindExistingRound(ctx, userID, time.Time{}, "", "8231")
		require.NoError(t, err)
		require.Equal(t, first, id)

		id, err = store.FindExistingRound(ctx, userID, time.Time{}, "", "no-such-id")
		require.NoError(t, err)
		require.Zero(t, id)
	}
}

func TestManualRoundDedupFallback(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/rounds:manual-dedup",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	userID, err := store.CreateUser(ctx, golf.User{Email: "golfer@example.com"})
	require.NoError(t, err)

	manual := golf.Bundle{
		Round: golf.Round{
			UserID:     userID,
			Date:       time.Date(2024, 6, 2, 9, 0, 0, 0, timezone.Location),
			CourseName: "Pebble Beach Golf Links",
			Source:     golf.SourceManual,
			TotalScore: ptr(int64(88)),
		},
	}

	first, err := store.UpsertRound(ctx, manual)
	require.NoError(t, err)

	{
		// same day, near-identical course name resolves to the same round
		again := manual
		again.Round.CourseName = "Pebble Beach Golf Links."
		id, err := store.UpsertRound(ctx, again)
		require.NoError(t, err)
		require.Equal(t, first, id)
	}
	{
		// a different course on the same day is a new round
		other := manual
		other.Round.CourseName = "Spyglass Hill"
		id, err := store.UpsertRound(ctx, other)
		require.NoError(t, err)
		require.NotEqual(t, first, id)
	}

	{
		id, err := store.FindExistingRound(ctx, userID, manual.Round.Date, "pebble beach golf links", "")
		require.NoError(t, err)
		require.Equal(t, first, id)

		id, err = store.FindExistingRound(ctx, userID, manual.Round.Date, "augusta national", "")
		require.NoError(t, err)
		require.Zero(t, id)
	}
}

func TestBundleRoundTrip(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/rounds:roundtrip",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	userID, err := store.CreateUser(ctx, golf.User{Email: "golfer@example.com"})
	require.NoError(t, err)

	in := golf.Bundle{
		Round: golf.Round{
			UserID:         userID,
			Date:           time.Date(2024, 5, 20, 8, 0, 0, 0, timezone.Location),
			CourseName:     "Torrey Pines South",
			CourseLocation: "La Jolla, CA",
			TotalScore:     ptr(int64(91)),
			TotalPar:       ptr(int64(72)),
			Source:         golf.SourceArccos,
			SourceNativeID: "r-99",
			Notes:          "Arccos Round ID: r-99",
		},
		Holes: []golf.Hole{
			{
				Number:            1,
				Par:               4,
				Score:             ptr(int64(5)),
				FairwayHit:        ptr(true),
				GreenInRegulation: ptr(false),
				Putts:             ptr(int64(2)),
				DistanceYards:     ptr(int64(448)),
				Shots: []golf.Shot{
					{Number: 1, Club: "Driver", FromLocation: "tee", ToLocation: "rough", DistanceYards: ptr(245.0)},
					{Number: 2, Club: "8-Iron", FromLocation: "rough", ToLocation: "green", DistanceYards: ptr(140.0)},
				},
			},
			{
				Number: 2,
				Par:    3,
				Score:  ptr(int64(3)),
				Putts:  ptr(int64(1)),
			},
		},
		Stats: &golf.Stats{
			ScoreToPar:  ptr(int64(19)),
			PuttsTotal:  ptr(int64(3)),
			FairwaysHit: ptr(int64(1)),
			Extended: map[string]any{
				"data_source": "arccos",
			},
		},
	}

	id, err := store.UpsertRound(ctx, in)
	require.NoError(t, err)

	out, err := store.GetBundle(ctx, id)
	require.NoError(t, err)

	if diff := cmp.Diff(in.Holes, out.Holes); diff != "" {
		t.Fatalf("holes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(in.Stats, out.Stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, in.Round.CourseName, out.Round.CourseName)
	require.Equal(t, in.Round.Date.Unix(), out.Round.Date.Unix())

	{
		err := store.DeleteRound(ctx, id)
		require.NoError(t, err)

		all, err := store.ListRounds(ctx, userID)
		require.NoError(t, err)
		require.Len(t, all, 0)
	}
}

func TestClubDistanceRefresh(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/rounds:clubs",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	userID, err := store.CreateUser(ctx, golf.User{Email: "golfer@example.com"})
	require.NoError(t, err)

	_, err = store.AddClub(ctx, golf.Club{UserID: userID, Name: "Driver", Type: "driver"})
	require.NoError(t, err)
	_, err = store.AddClub(ctx, golf.Club{UserID: userID, Name: "Putter", Type: "putter"})
	require.NoError(t, err)

	_, err = store.UpsertRound(ctx, practiceBundle(userID, "777", 250))
	require.NoError(t, err)

	err = store.RefreshClubDistances(ctx, userID)
	require.NoError(t, err)

	clubs, err := store.ListClubs(ctx, userID)
	require.NoError(t, err)
	require.Len(t, clubs, 2)

	byName := map[string]golf.Club{}
	for _, c := range clubs {
		byName[c.Name] = c
	}
	require.NotNil(t, byName["Driver"].AvgDistanceYards)
	require.Equal(t, 265.0, *byName["Driver"].AvgDistanceYards)
	require.Equal(t, 265.0, *byName["Driver"].MaxDistanceYards)
	// nothing recorded for the putter, distances stay unset
	require.Nil(t, byName["Putter"].AvgDistanceYards)
}

func TestRunReportPersistence(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/rounds:reports",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		_, ok, err := store.LatestRunReport(ctx)
		require.NoError(t, err)
		require.False(t, ok)
	}

	start := timezone.Now().Add(-time.Hour)
	err := store.SaveRunReport(ctx, golf.RunReport{
		RunID:          "abc123",
		StartedAt:      start,
		FinishedAt:     start.Add(10 * time.Minute),
		UsersProcessed: 3,
		SourceCounts:   map[golf.Source]int{golf.SourceTrackman: 5, golf.SourceArccos: 2},
		Errors:         []string{"arccos: unit B: fetch failed"},
	})
	require.NoError(t, err)

	latest, ok, err := store.LatestRunReport(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc123", latest.RunID)
	require.Equal(t, int64(3), latest.UsersProcessed)
	require.Equal(t, 5, latest.SourceCounts[golf.SourceTrackman])
	require.Len(t, latest.Errors, 1)

	since, err := store.ListRunReportsSince(ctx, start.Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, since, 1)

	none, err := store.ListRunReportsSince(ctx, timezone.Now())
	require.NoError(t, err)
	require.Len(t, none, 0)
}
