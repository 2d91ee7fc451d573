package transform

import (
	"context"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers/trackman"
)

// Trackman maps a raw launch monitor session onto the domain model:
// one synthetic hole holding every shot, range to range, with the
// session averages in the stats row.
func Trackman(ctx context.Context, userID int64, raw trackman.Session) golf.Bundle {
	courseName := raw.Title
	if courseName == "" {
		courseName = "Trackman Session"
	}

	round := golf.Round{
		UserID:         userID,
		Date:           parseDisplayDate(ctx, raw.Date),
		CourseName:     courseName,
		CourseLocation: raw.Location,
		Source:         golf.SourceTrackman,
		SourceNativeID: raw.NativeID,
		Notes:          "Trackman Session ID: " + raw.NativeID,
	}

	shots := make([]golf.Shot, 0, len(raw.Shots))
	for i, s := range raw.Shots {
		shots = append(shots, golf.Shot{
			Number:        int64(i + 1),
			Club:          s.Club,
			FromLocation:  "range",
			ToLocation:    "range",
			BallSpeed:     s.BallSpeed,
			ClubSpeed:     s.ClubSpeed,
			SmashFactor:   s.SmashFactor,
			LaunchAngle:   s.LaunchAngle,
			SpinRate:      s.SpinRate,
			CarryDistance: s.CarryDistance,
			TotalDistance: s.TotalDistance,
		})
	}

	extended := map[string]any{
		"shot_count":  len(shots),
		"data_source": string(golf.SourceTrackman),
	}
	putAverage(extended, "average_ball_speed", shots, func(s golf.Shot) *float64 { return s.BallSpeed })
	putAverage(extended, "average_club_speed", shots, func(s golf.Shot) *float64 { return s.ClubSpeed })
	putAverage(extended, "average_smash_factor", shots, func(s golf.Shot) *float64 { return s.SmashFactor })
	putAverage(extended, "average_launch_angle", shots, func(s golf.Shot) *float64 { return s.LaunchAngle })
	putAverage(extended, "average_spin_rate", shots, func(s golf.Shot) *float64 { return s.SpinRate })

	return golf.Bundle{
		Round: round,
		Holes: []golf.Hole{{
			Number: 1,
			Par:    practicePar,
			Shots:  shots,
		}},
		Stats: &golf.Stats{
			AverageDriveYards: averageDriveDistance(shots),
			Extended:          extended,
		},
	}
}
