package rounds

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/rounds/db"
)

// SaveRunReport records the outcome of one ingestion cycle so the
// status endpoint and the weekly summary can read it back later.
func (s *Store) SaveRunReport(ctx context.Context, report golf.RunReport) error {
	counts, err := json.Marshal(report.SourceCounts)
	if err != nil {
		return fmt.Errorf("encode source counts: %w", err)
	}
	errlist := report.Errors
	if errlist == nil {
		errlist = []string{}
	}
	serializedErrors, err := json.Marshal(errlist)
	if err != nil {
		return fmt.Errorf("encode errors: %w", err)
	}

	return s.qry.CreateRunReport(ctx, db.CreateRunReportParams{
		RunID:          report.RunID,
		StartedAt:      report.StartedAt.Unix(),
		FinishedAt:     report.FinishedAt.Unix(),
		UsersProcessed: report.UsersProcessed,
		SourceCounts:   string(counts),
		Errors:         string(serializedErrors),
	})
}

// LatestRunReport returns the most recent cycle's report, reporting
// false when no cycle has run yet.
func (s *Store) LatestRunReport(ctx context.Context) (golf.RunReport, bool, error) {
	row, err := s.qry.GetLatestRunReport(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return golf.RunReport{}, false, nil
	}
	if err != nil {
		return golf.RunReport{}, false, err
	}
	report, err := reportFromRow(row)
	if err != nil {
		return golf.RunReport{}, false, err
	}
	return report, true, nil
}

func (s *Store) ListRunReportsSince(ctx context.Context, since time.Time) ([]golf.RunReport, error) {
	rows, err := s.qry.ListRunReportsSince(ctx, since.Unix())
	if err != nil {
		return nil, err
	}
	return reportsFromRows(rows)
}

func (s *Store) ListRunReports(ctx context.Context, limit int64) ([]golf.RunReport, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.qry.ListRunReports(ctx, limit)
	if err != nil {
		return nil, err
	}
	return reportsFromRows(rows)
}

func reportsFromRows(rows []db.RunReport) ([]golf.RunReport, error) {
	out := make([]golf.RunReport, 0, len(rows))
	for _, row := range rows {
		report, err := reportFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, nil
}

func reportFromRow(row db.RunReport) (golf.RunReport, error) {
	report := golf.RunReport{
		RunID:          row.RunID,
		StartedAt:      time.Unix(row.StartedAt, 0).In(timezone.Location),
		FinishedAt:     time.Unix(row.FinishedAt, 0).In(timezone.Location),
		UsersProcessed: row.UsersProcessed,
	}
	err := json.Unmarshal([]byte(row.SourceCounts), &report.SourceCounts)
	if err != nil {
		return golf.RunReport{}, fmt.Errorf("decode source counts: %w", err)
	}
	err = json.Unmarshal([]byte(row.Errors), &report.Errors)
	if err != nil {
		return golf.RunReport{}, fmt.Errorf("decode errors: %w", err)
	}
	return report, nil
}
