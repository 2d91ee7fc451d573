// Package rounds owns the relational side of the system: the users,
// rounds, holes, shots and stats tables, and the natural-key dedup
// that keeps a rescrape of the same unit from creating a second row.
package rounds

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/textutil"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/rounds/db"
)

var tracer = otel.Tracer("services/rounds")

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) *Store {
	return &Store{
		db:  database,
		qry: db.New(database),
	}
}

// UpsertRound persists one bundle atomically: round, holes, shots and
// stats all land in a single transaction, or none of them do. When a
// round with the same natural key already exists, its row is updated
// in place and its children are replaced whole, so re-running a cycle
// over an unchanged window is free of duplicates.
func (s *Store) UpsertRound(ctx context.Context, bundle golf.Bundle) (int64, error) {
	ctx, span := tracer.Start(ctx, "UpsertRound")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("user_id", bundle.Round.UserID),
		attribute.String("source", string(bundle.Round.Source)),
		attribute.String("native_id", bundle.Round.SourceNativeID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	now := timezone.Now().Unix()
	round := bundle.Round

	existing, err := findExisting(ctx, txqry, round)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	var roundID int64
	if existing != 0 {
		roundID = existing
		err = txqry.UpdateRound(ctx, db.UpdateRoundParams{
			Date:           round.Date.Unix(),
			CourseName:     round.CourseName,
			CourseLocation: round.CourseLocation,
			TeeColor:       round.TeeColor,
			TotalScore:     nullInt(round.TotalScore),
			TotalPar:       nullInt(round.TotalPar),
			FrontNineScore: nullInt(round.FrontNineScore),
			BackNineScore:  nullInt(round.BackNineScore),
			Weather:        round.Weather,
			Notes:          round.Notes,
			UpdatedAt:      now,
			ID:             roundID,
		})
		if err == nil {
			err = txqry.DeleteShotsByRound(ctx, roundID)
		}
		if err == nil {
			err = txqry.DeleteHolesByRound(ctx, roundID)
		}
		if err == nil {
			err = txqry.DeleteStatsByRound(ctx, roundID)
		}
	} else {
		roundID, err = txqry.CreateRound(ctx, db.CreateRoundParams{
			UserID:         round.UserID,
			Date:           round.Date.Unix(),
			CourseName:     round.CourseName,
			CourseLocation: round.CourseLocation,
			TeeColor:       round.TeeColor,
			TotalScore:     nullInt(round.TotalScore),
			TotalPar:       nullInt(round.TotalPar),
			FrontNineScore: nullInt(round.FrontNineScore),
			BackNineScore:  nullInt(round.BackNineScore),
			Weather:        round.Weather,
			Notes:          round.Notes,
			SourceSystem:   string(round.Source),
			SourceNativeID: round.SourceNativeID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	for _, hole := range bundle.Holes {
		holeID, err := txqry.CreateHole(ctx, db.CreateHoleParams{
			RoundID:           roundID,
			HoleNumber:        hole.Number,
			Par:               hole.Par,
			Score:             nullInt(hole.Score),
			FairwayHit:        nullBool(hole.FairwayHit),
			GreenInRegulation: nullBool(hole.GreenInRegulation),
			Putts:             nullInt(hole.Putts),
			DistanceYards:     nullInt(hole.DistanceYards),
			Notes:             hole.Notes,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
		for _, shot := range hole.Shots {
			err = txqry.CreateShot(ctx, db.CreateShotParams{
				HoleID:        holeID,
				ShotNumber:    shot.Number,
				Club:          shot.Club,
				DistanceYards: nullFloat(shot.DistanceYards),
				FromLocation:  shot.FromLocation,
				ToLocation:    shot.ToLocation,
				IsPenalty:     boolToInt(shot.IsPenalty),
				BallSpeed:     nullFloat(shot.BallSpeed),
				ClubSpeed:     nullFloat(shot.ClubSpeed),
				SmashFactor:   nullFloat(shot.SmashFactor),
				LaunchAngle:   nullFloat(shot.LaunchAngle),
				SpinRate:      nullFloat(shot.SpinRate),
				SpinAxis:      nullFloat(shot.SpinAxis),
				CarryDistance: nullFloat(shot.CarryDistance),
				TotalDistance: nullFloat(shot.TotalDistance),
				SideDeviation: nullFloat(shot.SideDeviation),
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return 0, err
			}
		}
	}

	if bundle.Stats != nil {
		extended := "{}"
		if len(bundle.Stats.Extended) > 0 {
			serialized, err := json.Marshal(bundle.Stats.Extended)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return 0, err
			}
			extended = string(serialized)
		}
		err = txqry.CreateRoundStats(ctx, db.CreateRoundStatsParams{
			RoundID:            roundID,
			ScoreToPar:         nullInt(bundle.Stats.ScoreToPar),
			FairwaysHit:        nullInt(bundle.Stats.FairwaysHit),
			FairwaysTotal:      nullInt(bundle.Stats.FairwaysTotal),
			GreensInRegulation: nullInt(bundle.Stats.GreensInRegulation),
			PuttsTotal:         nullInt(bundle.Stats.PuttsTotal),
			PuttsPerHole:       nullFloat(bundle.Stats.PuttsPerHole),
			SandSaves:          nullInt(bundle.Stats.SandSaves),
			Penalties:          nullInt(bundle.Stats.Penalties),
			AverageDriveYards:  nullFloat(bundle.Stats.AverageDriveYards),
			ExtendedStats:      extended,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("round_id", roundID))
	return roundID, nil
}

// findExisting resolves the natural key for a round. Scraped rounds
// carry a source native id and hit the dedicated index. Manual rounds
// have none, so they fall back to same-source rounds on the same
// calendar day with a matching course name.
func findExisting(ctx context.Context, qry *db.Queries, round golf.Round) (int64, error) {
	if round.SourceNativeID != "" {
		id, err := qry.FindRoundByNativeKey(ctx, db.FindRoundByNativeKeyParams{
			UserID:         round.UserID,
			SourceSystem:   string(round.Source),
			SourceNativeID: round.SourceNativeID,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return id, err
	}

	date := round.Date.In(timezone.Location)
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, timezone.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	sameDay, err := qry.ListRoundsByUserBetween(ctx, db.ListRoundsByUserBetweenParams{
		UserID: round.UserID,
		After:  dayStart.Unix(),
		Before: dayEnd.Unix(),
	})
	if err != nil {
		return 0, err
	}
	for _, candidate := range sameDay {
		if candidate.SourceSystem != string(round.Source) {
			continue
		}
		if textutil.MatchCourseName(candidate.CourseName, round.CourseName) {
			return candidate.ID, nil
		}
	}
	return 0, nil
}

// FindExistingRound reports the id of the round matching the given
// natural key, or 0 when no such round exists. A native id is checked
// against every scraped source since the caller doesn't know which one
// produced it. An empty native id means a manual round, matched by day
// and course name.
func (s *Store) FindExistingRound(ctx context.Context, userID int64, date time.Time, courseName string, nativeID string) (int64, error) {
	if nativeID == "" {
		return findExisting(ctx, s.qry, golf.Round{
			UserID:     userID,
			Date:       date,
			CourseName: courseName,
			Source:     golf.SourceManual,
		})
	}

	for _, source := range []golf.Source{golf.SourceTrackman, golf.SourceArccos, golf.SourceSkytrak} {
		id, err := s.qry.FindRoundByNativeKey(ctx, db.FindRoundByNativeKeyParams{
			UserID:         userID,
			SourceSystem:   string(source),
			SourceNativeID: nativeID,
		})
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return id, nil
	}
	return 0, nil
}

// GetBundle loads one round with its holes, shots and stats.
func (s *Store) GetBundle(ctx context.Context, roundID int64) (golf.Bundle, error) {
	ctx, span := tracer.Start(ctx, "GetBundle")
	defer span.End()

	row, err := s.qry.GetRound(ctx, roundID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return golf.Bundle{}, err
	}

	bundle := golf.Bundle{Round: roundFromRow(row)}

	holeRows, err := s.qry.ListHolesByRound(ctx, roundID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return golf.Bundle{}, err
	}
	for _, h := range holeRows {
		hole := golf.Hole{
			Number:            h.HoleNumber,
			Par:               h.Par,
			Score:             intPtr(h.Score),
			FairwayHit:        boolPtr(h.FairwayHit),
			GreenInRegulation: boolPtr(h.GreenInRegulation),
			Putts:             intPtr(h.Putts),
			DistanceYards:     intPtr(h.DistanceYards),
			Notes:             h.Notes,
		}
		shotRows, err := s.qry.ListShotsByHole(ctx, h.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return golf.Bundle{}, err
		}
		for _, sh := range shotRows {
			hole.Shots = append(hole.Shots, golf.Shot{
				Number:        sh.ShotNumber,
				Club:          sh.Club,
				DistanceYards: floatPtr(sh.DistanceYards),
				FromLocation:  sh.FromLocation,
				ToLocation:    sh.ToLocation,
				IsPenalty:     sh.IsPenalty != 0,
				BallSpeed:     floatPtr(sh.BallSpeed),
				ClubSpeed:     floatPtr(sh.ClubSpeed),
				SmashFactor:   floatPtr(sh.SmashFactor),
				LaunchAngle:   floatPtr(sh.LaunchAngle),
				SpinRate:      floatPtr(sh.SpinRate),
				SpinAxis:      floatPtr(sh.SpinAxis),
				CarryDistance: floatPtr(sh.CarryDistance),
				TotalDistance: floatPtr(sh.TotalDistance),
				SideDeviation: floatPtr(sh.SideDeviation),
			})
		}
		bundle.Holes = append(bundle.Holes, hole)
	}

	statsRow, err := s.qry.GetRoundStats(ctx, roundID)
	if errors.Is(err, sql.ErrNoRows) {
		return bundle, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return golf.Bundle{}, err
	}

	stats := golf.Stats{
		ScoreToPar:         intPtr(statsRow.ScoreToPar),
		FairwaysHit:        intPtr(statsRow.FairwaysHit),
		FairwaysTotal:      intPtr(statsRow.FairwaysTotal),
		GreensInRegulation: intPtr(statsRow.GreensInRegulation),
		PuttsTotal:         intPtr(statsRow.PuttsTotal),
		PuttsPerHole:       floatPtr(statsRow.PuttsPerHole),
		SandSaves:          intPtr(statsRow.SandSaves),
		Penalties:          intPtr(statsRow.Penalties),
		AverageDriveYards:  floatPtr(statsRow.AverageDriveYards),
	}
	if statsRow.ExtendedStats != "" && statsRow.ExtendedStats != "{}" {
		err = json.Unmarshal([]byte(statsRow.ExtendedStats), &stats.Extended)
		if err != nil {
			return golf.Bundle{}, fmt.Errorf("decode extended stats: %w", err)
		}
	}
	bundle.Stats = &stats
	return bundle, nil
}

// ListRounds returns a user's rounds newest first, without children.
func (s *Store) ListRounds(ctx context.Context, userID int64) ([]golf.Round, error) {
	rows, err := s.qry.ListRoundsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]golf.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, roundFromRow(row))
	}
	return out, nil
}

// DeleteRound removes a round and everything hanging off it in one
// transaction.
func (s *Store) DeleteRound(ctx context.Context, roundID int64) error {
	ctx, span := tracer.Start(ctx, "DeleteRound")
	defer span.End()
	span.SetAttributes(attribute.Int64("round_id", roundID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteShotsByRound(ctx, roundID)
	if err == nil {
		err = txqry.DeleteHolesByRound(ctx, roundID)
	}
	if err == nil {
		err = txqry.DeleteStatsByRound(ctx, roundID)
	}
	if err == nil {
		err = txqry.DeleteRound(ctx, roundID)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return tx.Commit()
}

func roundFromRow(row db.Round) golf.Round {
	return golf.Round{
		ID:             row.ID,
		UserID:         row.UserID,
		Date:           time.Unix(row.Date, 0).In(timezone.Location),
		CourseName:     row.CourseName,
		CourseLocation: row.CourseLocation,
		TeeColor:       row.TeeColor,
		TotalScore:     intPtr(row.TotalScore),
		TotalPar:       intPtr(row.TotalPar),
		FrontNineScore: intPtr(row.FrontNineScore),
		BackNineScore:  intPtr(row.BackNineScore),
		Weather:        row.Weather,
		Notes:          row.Notes,
		Source:         golf.Source(row.SourceSystem),
		SourceNativeID: row.SourceNativeID,
		CreatedAt:      time.Unix(row.CreatedAt, 0).In(timezone.Location),
		UpdatedAt:      time.Unix(row.UpdatedAt, 0).In(timezone.Location),
	}
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullBool(v *bool) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: boolToInt(*v), Valid: true}
}

func boolToInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func boolPtr(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Int64 != 0
	return &b
}
