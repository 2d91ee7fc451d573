package transform

import (
	"context"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers/skytrak"
)

// Skytrak maps a raw simulator session onto the domain model. Same
// shape as Trackman, one synthetic hole, but the simulator table has
// no club speed or smash factor worth averaging.
func Skytrak(ctx context.Context, userID int64, raw skytrak.Session) golf.Bundle {
	courseName := raw.Title
	if courseName == "" {
		courseName = "SkyTrak Practice Session"
	}

	round := golf.Round{
		UserID:         userID,
		Date:           parseDisplayDate(ctx, raw.Date),
		CourseName:     courseName,
		CourseLocation: "Practice Range",
		Source:         golf.SourceSkytrak,
		SourceNativeID: raw.NativeID,
		Notes:          "SkyTrak Session ID: " + raw.NativeID,
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
		"data_source": string(golf.SourceSkytrak),
	}
	putAverage(extended, "average_ball_speed", shots, func(s golf.Shot) *float64 { return s.BallSpeed })
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
