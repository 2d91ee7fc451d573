package transform

import (
	"context"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers/arccos"
)

// Arccos maps a raw GPS-tracked round onto the domain model. The only
// source with real holes: hole cards carry their own pars and scores,
// shots carry on-course locations, and the stats tab feeds the round
// stats directly.
func Arccos(ctx context.Context, userID int64, raw arccos.Round) golf.Bundle {
	courseName := raw.CourseName
	if courseName == "" {
		courseName = "Unknown Course"
	}

	round := golf.Round{
		UserID:         userID,
		Date:           parseDisplayDate(ctx, raw.Date),
		CourseName:     courseName,
		CourseLocation: raw.Location,
		TotalScore:     raw.TotalScore,
		TotalPar:       raw.TotalPar,
		FrontNineScore: raw.FrontNineScore,
		BackNineScore:  raw.BackNineScore,
		Source:         golf.SourceArccos,
		SourceNativeID: raw.NativeID,
		Notes:          "Arccos Round ID: " + raw.NativeID,
	}

	holes := make([]golf.Hole, 0, len(raw.Holes))
	shotCount := 0
	penalties := int64(0)
	for _, h := range raw.Holes {
		par := int64(practicePar)
		if h.Par != nil {
			par = *h.Par
		}
		hole := golf.Hole{
			Number:            h.Number,
			Par:               par,
			Score:             h.Score,
			FairwayHit:        h.FairwayHit,
			GreenInRegulation: h.GreenInRegulation,
			Putts:             h.Putts,
			DistanceYards:     h.DistanceYards,
		}
		for i, s := range h.Shots {
			hole.Shots = append(hole.Shots, golf.Shot{
				Number:        int64(i + 1),
				Club:          s.Club,
				DistanceYards: s.DistanceYards,
				FromLocation:  s.FromLocation,
				ToLocation:    s.ToLocation,
				IsPenalty:     s.IsPenalty,
			})
			shotCount++
			if s.IsPenalty {
				penalties++
			}
		}
		holes = append(holes, hole)
	}

	return golf.Bundle{
		Round: round,
		Holes: holes,
		Stats: arccosStats(raw, holes, shotCount, penalties),
	}
}

func arccosStats(raw arccos.Round, holes []golf.Hole, shotCount int, penalties int64) *golf.Stats {
	var scoreToPar *int64
	if raw.TotalScore != nil && raw.TotalPar != nil {
		diff := *raw.TotalScore - *raw.TotalPar
		scoreToPar = &diff
	}

	if raw.Stats == nil && scoreToPar == nil && shotCount == 0 {
		return nil
	}

	stats := golf.Stats{
		ScoreToPar: scoreToPar,
		Extended: map[string]any{
			"shot_count":  shotCount,
			"data_source": string(golf.SourceArccos),
		},
	}
	if shotCount > 0 {
		stats.Penalties = &penalties
	}

	if raw.Stats != nil {
		stats.FairwaysHit = raw.Stats.FairwaysHit
		stats.FairwaysTotal = raw.Stats.FairwaysTotal
		stats.GreensInRegulation = raw.Stats.GreensInRegulation
		stats.PuttsTotal = raw.Stats.PuttsTotal
		stats.AverageDriveYards = raw.Stats.AverageDriveYards

		if raw.Stats.PuttsTotal != nil && len(holes) > 0 {
			perHole := round1(float64(*raw.Stats.PuttsTotal) / float64(len(holes)))
			stats.PuttsPerHole = &perHole
		}
	}

	return &stats
}
