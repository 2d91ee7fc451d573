package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"golfsync-backend/lib/browser"
	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers"
	"golfsync-backend/lib/scrapers/arccos"
	"golfsync-backend/lib/scrapers/skytrak"
	"golfsync-backend/lib/scrapers/trackman"
	"golfsync-backend/lib/transform"
)

// sourceRunner is one dashboard bound to a live browser session:
// log in, list the units, turn one unit into a persistable bundle.
// The three real implementations pair a scraper client with its
// transform; tests substitute fakes.
type sourceRunner interface {
	Authenticate(ctx context.Context, creds scrapers.Credentials) (bool, error)
	Enumerate(ctx context.Context, limit int) ([]scrapers.SessionSummary, error)
	FetchUnit(ctx context.Context, userID int64, summary scrapers.SessionSummary) (golf.Bundle, error)
}

// openBrowserRunner launches a fresh browser for one source run. The
// returned cleanup tears the browser down and must run no matter how
// the run ended.
func (s *Service) openBrowserRunner(ctx context.Context, source golf.Source, cfg SourceConfig) (sourceRunner, func(), error) {
	sess, err := browser.Open(ctx, s.options.Browser)
	if err != nil {
		return nil, nil, fmt.Errorf("open browser for %s: %w", source, err)
	}
	cleanup := func() {
		if err := sess.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close browser session", "source", source, "err", err)
		}
	}

	switch source {
	case golf.SourceTrackman:
		return trackmanRunner{client: trackman.New(sess, cfg.BaseURL, s.captures)}, cleanup, nil
	case golf.SourceArccos:
		return arccosRunner{client: arccos.New(sess, cfg.BaseURL, s.captures)}, cleanup, nil
	case golf.SourceSkytrak:
		return skytrakRunner{client: skytrak.New(sess, cfg.BaseURL, s.captures)}, cleanup, nil
	}
	cleanup()
	return nil, nil, fmt.Errorf("no scraper client for source %q", source)
}

type trackmanRunner struct {
	client *trackman.Client
}

func (r trackmanRunner) Authenticate(ctx context.Context, creds scrapers.Credentials) (bool, error) {
	return r.client.Authenticate(ctx, creds)
}

func (r trackmanRunner) Enumerate(ctx context.Context, limit int) ([]scrapers.SessionSummary, error) {
	return r.client.Enumerate(ctx, limit)
}

func (r trackmanRunner) FetchUnit(ctx context.Context, userID int64, summary scrapers.SessionSummary) (golf.Bundle, error) {
	raw, err := r.client.FetchDetail(ctx, summary)
	if err != nil {
		return golf.Bundle{}, err
	}
	return transform.Trackman(ctx, userID, raw), nil
}

type arccosRunner struct {
	client *arccos.Client
}

func (r arccosRunner) Authenticate(ctx context.Context, creds scrapers.Credentials) (bool, error) {
	return r.client.Authenticate(ctx, creds)
}

func (r arccosRunner) Enumerate(ctx context.Context, limit int) ([]scrapers.SessionSummary, error) {
	return r.client.Enumerate(ctx, limit)
}

func (r arccosRunner) FetchUnit(ctx context.Context, userID int64, summary scrapers.SessionSummary) (golf.Bundle, error) {
	raw, err := r.client.FetchDetail(ctx, summary)
	if err != nil {
		return golf.Bundle{}, err
	}
	return transform.Arccos(ctx, userID, raw), nil
}

type skytrakRunner struct {
	client *skytrak.Client
}

func (r skytrakRunner) Authenticate(ctx context.Context, creds scrapers.Credentials) (bool, error) {
	return r.client.Authenticate(ctx, creds)
}

func (r skytrakRunner) Enumerate(ctx context.Context, limit int) ([]scrapers.SessionSummary, error) {
	return r.client.Enumerate(ctx, limit)
}

func (r skytrakRunner) FetchUnit(ctx context.Context, userID int64, summary scrapers.SessionSummary) (golf.Bundle, error) {
	raw, err := r.client.FetchDetail(ctx, summary)
	if err != nil {
		return golf.Bundle{}, err
	}
	return transform.Skytrak(ctx, userID, raw), nil
}
