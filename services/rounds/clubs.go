package rounds

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/textutil"
	"golfsync-backend/services/rounds/db"
)

// AddClub inserts a club into a user's bag or updates the profile of
// one already there, keyed by (user, name).
func (s *Store) AddClub(ctx context.Context, club golf.Club) (int64, error) {
	return s.qry.CreateClub(ctx, db.CreateClubParams{
		UserID:   club.UserID,
		Name:     club.Name,
		ClubType: club.Type,
		Brand:    club.Brand,
		Model:    club.Model,
		Loft:     nullFloat(club.Loft),
		Notes:    club.Notes,
	})
}

func (s *Store) ListClubs(ctx context.Context, userID int64) ([]golf.Club, error) {
	rows, err := s.qry.ListClubsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]golf.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, golf.Club{
			ID:               row.ID,
			UserID:           row.UserID,
			Name:             row.Name,
			Type:             row.ClubType,
			Brand:            row.Brand,
			Model:            row.Model,
			Loft:             floatPtr(row.Loft),
			AvgDistanceYards: floatPtr(row.AvgDistanceYards),
			MaxDistanceYards: floatPtr(row.MaxDistanceYards),
			IsActive:         row.IsActive != 0,
			Notes:            row.Notes,
		})
	}
	return out, nil
}

func (s *Store) DeleteClub(ctx context.Context, userID int64, name string) error {
	return s.qry.DeleteClub(ctx, db.DeleteClubParams{UserID: userID, Name: name})
}

// RefreshClubDistances recomputes each bag club's average and max
// total distance from the user's ingested shots. Clubs nothing was
// recorded for keep their previous numbers.
func (s *Store) RefreshClubDistances(ctx context.Context, userID int64) error {
	ctx, span := tracer.Start(ctx, "RefreshClubDistances")
	defer span.End()
	span.SetAttributes(attribute.Int64("user_id", userID))

	clubs, err := s.qry.ListClubsByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	shots, err := s.qry.ListShotClubDistances(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	type agg struct {
		sum   float64
		max   float64
		count int
	}
	byClub := map[string]*agg{}
	for _, shot := range shots {
		if !shot.TotalDistance.Valid {
			continue
		}
		key := textutil.NormalizeName(shot.Club)
		a := byClub[key]
		if a == nil {
			a = &agg{}
			byClub[key] = a
		}
		a.sum += shot.TotalDistance.Float64
		a.count++
		if shot.TotalDistance.Float64 > a.max {
			a.max = shot.TotalDistance.Float64
		}
	}

	for _, club := range clubs {
		a := byClub[textutil.NormalizeName(club.Name)]
		if a == nil || a.count == 0 {
			continue
		}
		avg := a.sum / float64(a.count)
		err = s.qry.UpdateClubDistances(ctx, db.UpdateClubDistancesParams{
			AvgDistanceYards: nullFloat(&avg),
			MaxDistanceYards: nullFloat(&a.max),
			ID:               club.ID,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		slog.DebugContext(ctx, "refreshed club distances",
			"club", club.Name, "avg", avg, "max", a.max, "shots", a.count)
	}
	return nil
}
