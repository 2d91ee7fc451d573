package rounds

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/rounds/db"
)

func normalizeEmail(email string) string {
	return strings.Trim(strings.ToLower(email), " \t\n")
}

// CreateUser inserts a user or refreshes the profile fields of an
// existing one, keyed by email.
func (s *Store) CreateUser(ctx context.Context, user golf.User) (int64, error) {
	now := timezone.Now().Unix()
	units := user.PreferredUnits
	if units == "" {
		units = "yards"
	}
	return s.qry.CreateUser(ctx, db.CreateUserParams{
		Email:          normalizeEmail(user.Email),
		Name:           user.Name,
		IsActive:       1,
		Handicap:       nullFloat(user.Handicap),
		PreferredUnits: units,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (golf.User, bool, error) {
	row, err := s.qry.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return golf.User{}, false, nil
	}
	if err != nil {
		return golf.User{}, false, err
	}
	return userFromRow(row), true, nil
}

// ListActiveUsers is the coordinator's user source: everyone ingestion
// should run for on the next cycle.
func (s *Store) ListActiveUsers(ctx context.Context) ([]golf.User, error) {
	rows, err := s.qry.ListActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	return usersFromRows(rows), nil
}

func (s *Store) ListUsers(ctx context.Context) ([]golf.User, error) {
	rows, err := s.qry.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return usersFromRows(rows), nil
}

func (s *Store) SetUserActive(ctx context.Context, email string, active bool) error {
	return s.qry.SetUserActive(ctx, db.SetUserActiveParams{
		IsActive:  boolToInt(active),
		UpdatedAt: timezone.Now().Unix(),
		Email:     normalizeEmail(email),
	})
}

func usersFromRows(rows []db.User) []golf.User {
	out := make([]golf.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out
}

func userFromRow(row db.User) golf.User {
	return golf.User{
		ID:             row.ID,
		Email:          row.Email,
		Name:           row.Name,
		IsActive:       row.IsActive != 0,
		Handicap:       floatPtr(row.Handicap),
		PreferredUnits: row.PreferredUnits,
		CreatedAt:      time.Unix(row.CreatedAt, 0).In(timezone.Location),
		UpdatedAt:      time.Unix(row.UpdatedAt, 0).In(timezone.Location),
	}
}
