package transform

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers/arccos"
	"golfsync-backend/lib/scrapers/skytrak"
	"golfsync-backend/lib/scrapers/trackman"
	"golfsync-backend/lib/timezone"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseDisplayDate(t *testing.T) {
	ctx := context.Background()

	// every layout the dashboards render
	{
		cases := map[string]time.Time{
			"2024-03-15 18:30": time.Date(2024, 3, 15, 18, 30, 0, 0, timezone.Location),
			"2024/03/15 18:30": time.Date(2024, 3, 15, 18, 30, 0, 0, timezone.Location),
			"03/15/2024 18:30": time.Date(2024, 3, 15, 18, 30, 0, 0, timezone.Location),
			"2024-03-15":       time.Date(2024, 3, 15, 0, 0, 0, 0, timezone.Location),
			"03/15/2024":       time.Date(2024, 3, 15, 0, 0, 0, 0, timezone.Location),
			"Mar 15, 2024":     time.Date(2024, 3, 15, 0, 0, 0, 0, timezone.Location),
			"15 Mar 2024":      time.Date(2024, 3, 15, 0, 0, 0, 0, timezone.Location),
		}
		for display, want := range cases {
			got := parseDisplayDate(ctx, display)
			require.True(t, got.Equal(want), "display %q parsed to %v, want %v", display, got, want)
		}
	}

	// day-first only parses day-first when month-first is impossible
	{
		got := parseDisplayDate(ctx, "15/03/2024")
		require.True(t, got.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, timezone.Location)))
	}

	// garbage falls back to the current time instead of failing
	{
		got := parseDisplayDate(ctx, "yesterday evening")
		require.WithinDuration(t, timezone.Now(), got, 5*time.Second)
	}
	{
		got := parseDisplayDate(ctx, "")
		require.WithinDuration(t, timezone.Now(), got, 5*time.Second)
	}
}

func TestAverageOf(t *testing.T) {
	// absent values are excluded, not counted as zero
	{
		avg := averageOf([]*float64{ptr(120.0), nil, ptr(140.0)})
		require.NotNil(t, avg)
		require.InDelta(t, 130.0, *avg, 0.001)
	}

	// all absent means no average at all
	{
		require.Nil(t, averageOf([]*float64{nil, nil}))
		require.Nil(t, averageOf(nil))
	}
}

func TestAverageDriveDistance(t *testing.T) {
	shots := []golf.Shot{
		{Club: "Driver", TotalDistance: ptr(250.0)},
		{Club: "7-Iron", TotalDistance: ptr(150.0)},
		{Club: "1W", TotalDistance: ptr(230.0)},
	}

	avg := averageDriveDistance(shots)
	require.NotNil(t, avg)
	require.InDelta(t, 240.0, *avg, 0.001)

	// branded labels still count as a driver
	{
		shots := []golf.Shot{
			{Club: "TaylorMade Driver", TotalDistance: ptr(260.0)},
			{Club: "Pitching Wedge", TotalDistance: ptr(110.0)},
		}
		avg := averageDriveDistance(shots)
		require.NotNil(t, avg)
		require.InDelta(t, 260.0, *avg, 0.001)
	}

	// a driver swing with no recorded distance doesn't drag the
	// average toward zero
	{
		shots := append(shots, golf.Shot{Club: "driver"})
		avg := averageDriveDistance(shots)
		require.NotNil(t, avg)
		require.InDelta(t, 240.0, *avg, 0.001)
	}

	// no driver shots at all
	{
		require.Nil(t, averageDriveDistance([]golf.Shot{
			{Club: "7-Iron", TotalDistance: ptr(150.0)},
		}))
	}
}

func TestTrackmanBundle(t *testing.T) {
	ctx := context.Background()

	raw := trackman.Session{
		NativeID: "8231",
		Title:    "Evening Range Work",
		Date:     "2024-03-15 18:30",
		Location: "Bay 12, Golfzone",
		Shots: []trackman.Shot{
			{Club: "Driver", BallSpeed: ptr(165.2), TotalDistance: ptr(268.0)},
			{Club: "7 Iron", BallSpeed: ptr(118.9), CarryDistance: ptr(162.5)},
			{Club: "Driver", BallSpeed: ptr(162.0), TotalDistance: ptr(259.0)},
		},
	}

	bundle := Trackman(ctx, 7, raw)

	require.EqualValues(t, 7, bundle.Round.UserID)
	require.Equal(t, "Evening Range Work", bundle.Round.CourseName)
	require.Equal(t, "Bay 12, Golfzone", bundle.Round.CourseLocation)
	require.Equal(t, golf.SourceTrackman, bundle.Round.Source)
	require.Equal(t, "8231", bundle.Round.SourceNativeID)
	require.Equal(t, "Trackman Session ID: 8231", bundle.Round.Notes)
	require.True(t, bundle.Round.Date.Equal(time.Date(2024, 3, 15, 18, 30, 0, 0, timezone.Location)))

	// a practice source gets exactly one synthetic hole holding
	// every shot
	require.Len(t, bundle.Holes, 1)
	hole := bundle.Holes[0]
	require.EqualValues(t, 1, hole.Number)
	require.EqualValues(t, 4, hole.Par)
	require.Len(t, hole.Shots, 3)

	// shots are numbered 1..N in encounter order
	for i, shot := range hole.Shots {
		require.EqualValues(t, i+1, shot.Number)
		require.Equal(t, "range", shot.FromLocation)
		require.Equal(t, "range", shot.ToLocation)
	}

	require.NotNil(t, bundle.Stats)
	require.NotNil(t, bundle.Stats.AverageDriveYards)
	require.InDelta(t, 263.5, *bundle.Stats.AverageDriveYards, 0.001)
	require.Equal(t, 3, bundle.Stats.Extended["shot_count"])
	require.Equal(t, "trackman", bundle.Stats.Extended["data_source"])
	require.InDelta(t, (165.2+118.9+162.0)/3, bundle.Stats.Extended["average_ball_speed"].(float64), 0.001)

	// no shot carried club speed, so the key is absent rather than 0
	_, present := bundle.Stats.Extended["average_club_speed"]
	require.False(t, present)
}

func TestSkytrakBundle(t *testing.T) {
	ctx := context.Background()

	// defaults when the page gave us nothing but shots
	raw := skytrak.Session{
		NativeID: "st-55",
		Date:     "not a date",
		Shots: []skytrak.Shot{
			{Club: "PW", CarryDistance: ptr(118.0)},
		},
	}

	bundle := Skytrak(ctx, 3, raw)

	require.Equal(t, "SkyTrak Practice Session", bundle.Round.CourseName)
	require.Equal(t, "Practice Range", bundle.Round.CourseLocation)
	require.Equal(t, "SkyTrak Session ID: st-55", bundle.Round.Notes)
	require.WithinDuration(t, timezone.Now(), bundle.Round.Date, 5*time.Second)

	require.Len(t, bundle.Holes, 1)
	require.EqualValues(t, 1, bundle.Holes[0].Number)
	require.Len(t, bundle.Holes[0].Shots, 1)
	require.NotNil(t, bundle.Stats)
	require.Equal(t, 1, bundle.Stats.Extended["shot_count"])
	require.Equal(t, "skytrak", bundle.Stats.Extended["data_source"])
}

func TestArccosBundle(t *testing.T) {
	ctx := context.Background()

	raw := arccos.Round{
		NativeID:       "r-991",
		CourseName:     "Chambers Bay",
		Date:           "Mar 15, 2024",
		Location:       "University Place, WA",
		TotalScore:     ptr(int64(84)),
		TotalPar:       ptr(int64(72)),
		FrontNineScore: ptr(int64(41)),
		BackNineScore:  ptr(int64(43)),
		Holes: []arccos.Hole{
			{
				Number:        1,
				Par:           ptr(int64(4)),
				Score:         ptr(int64(5)),
				DistanceYards: ptr(int64(412)),
				Putts:         ptr(int64(2)),
				FairwayHit:    ptr(true),
				Shots: []arccos.Shot{
					{Club: "Driver", DistanceYards: ptr(251.0), FromLocation: "tee", ToLocation: "fairway"},
					{Club: "9 Iron", DistanceYards: ptr(140.0), FromLocation: "fairway", ToLocation: "green"},
					{Club: "Putter", FromLocation: "green", ToLocation: "hole"},
				},
			},
			{
				Number: 2,
				Score:  ptr(int64(4)),
				Shots: []arccos.Shot{
					{Club: "3 Wood", DistanceYards: ptr(230.0), FromLocation: "tee", ToLocation: "rough"},
					{Club: "PW", IsPenalty: true},
				},
			},
		},
		Stats: &arccos.TabStats{
			FairwaysHit:        ptr(int64(9)),
			FairwaysTotal:      ptr(int64(14)),
			GreensInRegulation: ptr(int64(8)),
			PuttsTotal:         ptr(int64(31)),
			AverageDriveYards:  ptr(248.5),
		},
	}

	bundle := Arccos(ctx, 11, raw)

	require.Equal(t, "Chambers Bay", bundle.Round.CourseName)
	require.Equal(t, "Arccos Round ID: r-991", bundle.Round.Notes)
	require.True(t, bundle.Round.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, timezone.Location)))

	wantHoles := []golf.Hole{
		{
			Number:        1,
			Par:           4,
			Score:         ptr(int64(5)),
			DistanceYards: ptr(int64(412)),
			Putts:         ptr(int64(2)),
			FairwayHit:    ptr(true),
			Shots: []golf.Shot{
				{Number: 1, Club: "Driver", DistanceYards: ptr(251.0), FromLocation: "tee", ToLocation: "fairway"},
				{Number: 2, Club: "9 Iron", DistanceYards: ptr(140.0), FromLocation: "fairway", ToLocation: "green"},
				{Number: 3, Club: "Putter", FromLocation: "green", ToLocation: "hole"},
			},
		},
		{
			// the card carried no par, the practice default fills in
			Number: 2,
			Par:    4,
			Score:  ptr(int64(4)),
			Shots: []golf.Shot{
				{Number: 1, Club: "3 Wood", DistanceYards: ptr(230.0), FromLocation: "tee", ToLocation: "rough"},
				{Number: 2, Club: "PW", IsPenalty: true},
			},
		},
	}
	require.Empty(t, cmp.Diff(wantHoles, bundle.Holes))

	require.NotNil(t, bundle.Stats)
	require.EqualValues(t, 12, *bundle.Stats.ScoreToPar)
	require.EqualValues(t, 9, *bundle.Stats.FairwaysHit)
	require.EqualValues(t, 14, *bundle.Stats.FairwaysTotal)
	require.EqualValues(t, 8, *bundle.Stats.GreensInRegulation)
	require.EqualValues(t, 31, *bundle.Stats.PuttsTotal)
	require.NotNil(t, bundle.Stats.PuttsPerHole)
	require.InDelta(t, 15.5, *bundle.Stats.PuttsPerHole, 0.001)
	require.NotNil(t, bundle.Stats.Penalties)
	require.EqualValues(t, 1, *bundle.Stats.Penalties)
	require.InDelta(t, 248.5, *bundle.Stats.AverageDriveYards, 0.001)
	require.Equal(t, 5, bundle.Stats.Extended["shot_count"])
}

func TestArccosBundleBareRound(t *testing.T) {
	ctx := context.Background()

	// nothing but an id: no course, no totals, no stats tab
	raw := arccos.Round{NativeID: "r-1"}
	bundle := Arccos(ctx, 2, raw)

	require.Equal(t, "Unknown Course", bundle.Round.CourseName)
	require.Nil(t, bundle.Round.TotalScore)
	require.Empty(t, bundle.Holes)
	require.Nil(t, bundle.Stats)
}
