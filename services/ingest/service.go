// Package ingest coordinates one full scraping cycle: every active
// user crossed with every configured source, each run feeding the
// transformer and the rounds store, all of it summarized in a single
// run report. One bad unit, user or source never takes down the rest
// of the cycle.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"golfsync-backend/lib/browser"
	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/pagecache"
	"golfsync-backend/lib/retry"
	"golfsync-backend/lib/scrapers"
	"golfsync-backend/lib/timezone"
	"golfsync-backend/services/keychain"
	"golfsync-backend/services/rounds"
)

var tracer = otel.Tracer("services/ingest")

// units fetched per source per user when the config doesn't say
const defaultUnitLimit = 20

type SourceConfig struct {
	Enabled bool   `json:"enabled"`
	BaseURL string `json:"base_url"`
}

type SourcesConfig struct {
	Trackman SourceConfig `json:"trackman"`
	Arccos   SourceConfig `json:"arccos"`
	Skytrak  SourceConfig `json:"skytrak"`
}

// enabled returns the sources to run, in the fixed order cycles
// always process them.
func (c SourcesConfig) enabled() []golf.Source {
	var out []golf.Source
	if c.Trackman.Enabled {
		out = append(out, golf.SourceTrackman)
	}
	if c.Arccos.Enabled {
		out = append(out, golf.SourceArccos)
	}
	if c.Skytrak.Enabled {
		out = append(out, golf.SourceSkytrak)
	}
	return out
}

func (c SourcesConfig) get(source golf.Source) SourceConfig {
	switch source {
	case golf.SourceTrackman:
		return c.Trackman
	case golf.SourceArccos:
		return c.Arccos
	case golf.SourceSkytrak:
		return c.Skytrak
	}
	return SourceConfig{}
}

type Options struct {
	Browser   browser.Options `json:"browser"`
	Sources   SourcesConfig   `json:"sources"`
	UnitLimit int             `json:"unit_limit"`
}

type Service struct {
	store    *rounds.Store
	keys     keychain.Service
	captures *pagecache.Store
	options  Options
	// swapped for a fake in tests
	open func(ctx context.Context, source golf.Source, cfg SourceConfig) (sourceRunner, func(), error)
}

// NewService wires the coordinator. captures may be nil to disable
// raw page archiving.
func NewService(store *rounds.Store, keys keychain.Service, captures *pagecache.Store, options Options) *Service {
	if options.UnitLimit <= 0 {
		options.UnitLimit = defaultUnitLimit
	}
	s := &Service{
		store:    store,
		keys:     keys,
		captures: captures,
		options:  options,
	}
	s.open = s.openBrowserRunner
	return s
}

// RunCycle processes every active user against every enabled source
// and persists what it finds. The returned report is also saved so
// the daemon's status endpoint and the weekly summary can replay it.
// The error return is reserved for failures that stop the cycle from
// even starting, everything else lands in the report's error list.
func (s *Service) RunCycle(ctx context.Context) (golf.RunReport, error) {
	ctx, span := tracer.Start(ctx, "RunCycle")
	defer span.End()

	runID, err := random.String(8)
	if err != nil {
		runID = "unknown"
	}
	report := golf.RunReport{
		RunID:        runID,
		StartedAt:    timezone.Now(),
		SourceCounts: map[golf.Source]int{},
	}
	slog.InfoContext(ctx, "starting ingestion cycle", "run_id", runID)

	enabledSources := s.options.Sources.enabled()
	report.Errors = append(report.Errors, s.probeSources(ctx, enabledSources)...)

	users, err := s.store.ListActiveUsers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not load active users")
		report.FinishedAt = timezone.Now()
		report.Errors = append(report.Errors, fmt.Sprintf("load active users: %s", err))
		return report, err
	}

	for _, user := range users {
		for _, source := range enabledSources {
			if !s.keys.HasValidCredentials(ctx, user.Email, source) {
				slog.DebugContext(ctx, "no credentials configured, skipping source",
					"user", user.Email, "source", source)
				continue
			}
			creds, ok, err := s.keys.Get(ctx, user.Email, source)
			if err != nil || !ok {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s/%s: load credentials: %s", user.Email, source, err))
				continue
			}

			persisted, errs := s.runSourceSession(ctx, user, source, creds)
			report.SourceCounts[source] += len(persisted)
			report.Errors = append(report.Errors, errs...)
		}
		report.UsersProcessed++
	}

	report.FinishedAt = timezone.Now()
	span.SetAttributes(
		attribute.Int64("users_processed", report.UsersProcessed),
		attribute.Int("errors", len(report.Errors)),
	)
	slog.InfoContext(ctx, "ingestion cycle finished",
		"run_id", report.RunID,
		"duration", report.Duration(),
		"users", report.UsersProcessed,
		"errors", len(report.Errors),
	)

	if err := s.store.SaveRunReport(ctx, report); err != nil {
		span.RecordError(err)
		report.Errors = append(report.Errors, fmt.Sprintf("save run report: %s", err))
	}
	return report, nil
}

// runSourceSession opens a browser for one (user, source) pair, runs
// it, and guarantees teardown.
func (s *Service) runSourceSession(ctx context.Context, user golf.User, source golf.Source, creds scrapers.Credentials) ([]int64, []string) {
	runner, cleanup, err := s.open(ctx, source, s.options.Sources.get(source))
	if err != nil {
		return nil, []string{fmt.Sprintf("%s/%s: %s", user.Email, source, err)}
	}
	defer cleanup()

	return s.runSource(ctx, runner, user, source, creds)
}

// runSource drives the full pipeline for one user against one source:
// authenticate, enumerate, then fetch-transform-upsert per unit with
// per-unit error isolation. A challenge page aborts the whole run for
// this pair immediately, nothing downstream retries it.
func (s *Service) runSource(ctx context.Context, runner sourceRunner, user golf.User, source golf.Source, creds scrapers.Credentials) (persisted []int64, errs []string) {
	ctx, span := tracer.Start(ctx, "runSource")
	defer span.End()
	span.SetAttributes(
		attribute.String("source", string(source)),
		attribute.Int64("user_id", user.ID),
	)

	fail := func(format string, args ...any) {
		msg := fmt.Sprintf("%s/%s: %s", user.Email, source, fmt.Sprintf(format, args...))
		slog.WarnContext(ctx, "ingestion failure", "detail", msg)
		errs = append(errs, msg)
	}

	var authenticated bool
	err := retry.Do(ctx, scrapers.LoginPolicy, "authenticate", func(ctx context.Context) error {
		ok, err := runner.Authenticate(ctx, creds)
		authenticated = ok
		return err
	}, scrapers.LoginRetryable...)
	if err != nil {
		if errors.Is(err, browser.CaptchaDetected) {
			fail("login blocked by a challenge page, aborting this source")
		} else {
			fail("login error: %s", err)
		}
		span.SetStatus(codes.Error, "authentication did not complete")
		return persisted, errs
	}
	if !authenticated {
		fail("authentication rejected")
		span.SetStatus(codes.Error, "authentication rejected")
		return persisted, errs
	}

	summaries, err := runner.Enumerate(ctx, s.options.UnitLimit)
	if err != nil {
		fail("enumerate: %s", err)
		span.SetStatus(codes.Error, "enumeration failed")
		return persisted, errs
	}

	for _, summary := range summaries {
		var bundle golf.Bundle
		err := retry.Do(ctx, scrapers.FetchPolicy, "fetch detail", func(ctx context.Context) error {
			var err error
			bundle, err = runner.FetchUnit(ctx, user.ID, summary)
			return err
		}, scrapers.FetchRetryable...)
		if errors.Is(err, browser.CaptchaDetected) {
			fail("unit %s blocked by a challenge page, aborting this source", summary.NativeID)
			return persisted, errs
		}
		if err != nil {
			fail("unit %s: %s", summary.NativeID, err)
			continue
		}

		roundID, err := s.store.UpsertRound(ctx, bundle)
		if err != nil {
			fail("unit %s: persist: %s", summary.NativeID, err)
			continue
		}
		persisted = append(persisted, roundID)
	}

	span.SetAttributes(attribute.Int("persisted", len(persisted)))
	return persisted, errs
}
