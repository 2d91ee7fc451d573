package ingest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"golfsync-backend/lib/browser"
	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/scrapers"
	"golfsync-backend/lib/testutil"
	"golfsync-backend/services/keychain"
	keychaindb "golfsync-backend/services/keychain/db"
	"golfsync-backend/services/rounds"
	roundsdb "golfsync-backend/services/rounds/db"

	_ "modernc.org/sqlite"
)

// fakeRunner scripts one source's behavior for a cycle without a
// browser in the loop.
type fakeRunner struct {
	authErr      error
	rejectAuth   bool
	authAttempts int
	summaries    []scrapers.SessionSummary
	fetchErrs    map[string]error
	fetchCalls   map[string]int
}

func (r *fakeRunner) Authenticate(ctx context.Context, creds scrapers.Credentials) (bool, error) {
	r.authAttempts++
	if r.authErr != nil {
		return false, r.authErr
	}
	return !r.rejectAuth, nil
}

func (r *fakeRunner) Enumerate(ctx context.Context, limit int) ([]scrapers.SessionSummary, error) {
	if len(r.summaries) > limit {
		return r.summaries[:limit], nil
	}
	return r.summaries, nil
}

func (r *fakeRunner) FetchUnit(ctx context.Context, userID int64, summary scrapers.SessionSummary) (golf.Bundle, error) {
	if r.fetchCalls == nil {
		r.fetchCalls = map[string]int{}
	}
	r.fetchCalls[summary.NativeID]++
	if err := r.fetchErrs[summary.NativeID]; err != nil {
		return golf.Bundle{}, err
	}
	score := int64(82)
	return golf.Bundle{
		Round: golf.Round{
			UserID:         userID,
			Date:           time.Date(2024, time.May, 4, 9, 0, 0, 0, time.UTC),
			CourseName:     "Harding Park",
			TotalScore:     &score,
			Source:         golf.SourceTrackman,
			SourceNativeID: summary.NativeID,
		},
	}, nil
}

func setupCoordinator(t *testing.T) (*Service, *rounds.Store, *fakeRunner) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/ingest",
		DbSchema: roundsdb.Schema + keychaindb.Schema,
	})
	t.Cleanup(cleanup)

	store := rounds.NewStore(setup.DB)
	keys, err := keychain.NewService(setup.DB, keychain.Options{
		EncryptionKey: "coordinator-test-key",
	})
	require.NoError(t, err)

	service := NewService(store, keys, nil, Options{
		Sources: SourcesConfig{
			Trackman: SourceConfig{Enabled: true, BaseURL: ""},
		},
	})

	runner := &fakeRunner{}
	service.open = func(ctx context.Context, source golf.Source, cfg SourceConfig) (sourceRunner, func(), error) {
		return runner, func() {}, nil
	}

	ctx := context.Background()
	_, err = store.CreateUser(ctx, golf.User{Email: "golfer@example.com", Name: "Golfer"})
	require.NoError(t, err)
	err = keys.Set(ctx, "golfer@example.com", golf.SourceTrackman, scrapers.Credentials{
		Identifier: "golfer",
		Secret:     "hunter2",
	})
	require.NoError(t, err)

	return service, store, runner
}

func TestRunCycleIsolatesUnitFailures(t *testing.T) {
	service, store, runner := setupCoordinator(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	runner.summaries = []scrapers.SessionSummary{
		{NativeID: "A"}, {NativeID: "B"}, {NativeID: "C"},
	}
	runner.fetchErrs = map[string]error{
		"B": fmt.Errorf("detail table never rendered"),
	}

	report, err := service.RunCycle(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, report.UsersProcessed)
	require.Equal(t, 2, report.SourceCounts[golf.SourceTrackman])

	// the one failure names the unit it came from
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], "B")

	user, ok, err := store.GetUserByEmail(ctx, "golfer@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	persisted, err := store.ListRounds(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	ids := []string{persisted[0].SourceNativeID, persisted[1].SourceNativeID}
	require.ElementsMatch(t, []string{"A", "C"}, ids)

	// the report is also persisted for the status endpoint
	saved, ok, err := store.LatestRunReport(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, report.RunID, saved.RunID)
}

func TestRunCycleAbortsOnChallengeWithoutRetry(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	{
		// challenge at login: exactly one attempt, nothing fetched
		service, store, runner := setupCoordinator(t)
		runner.authErr = fmt.Errorf("%w: login", browser.CaptchaDetected)
		runner.summaries = []scrapers.SessionSummary{{NativeID: "A"}}

		report, err := service.RunCycle(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, runner.authAttempts)
		require.Zero(t, report.SourceCounts[golf.SourceTrackman])
		require.Len(t, report.Errors, 1)
		require.Contains(t, report.Errors[0], "challenge")

		user, _, err := store.GetUserByEmail(ctx, "golfer@example.com")
		require.NoError(t, err)
		persisted, err := store.ListRounds(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, persisted)
	}
	{
		// challenge mid-batch: earlier units survive, the rest are skipped
		service, store, runner := setupCoordinator(t)
		runner.summaries = []scrapers.SessionSummary{
			{NativeID: "A"}, {NativeID: "B"}, {NativeID: "C"},
		}
		runner.fetchErrs = map[string]error{
			"B": fmt.Errorf("%w: detail page", browser.CaptchaDetected),
		}

		report, err := service.RunCycle(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, report.SourceCounts[golf.SourceTrackman])
		require.Equal(t, 1, runner.fetchCalls["B"])
		require.Zero(t, runner.fetchCalls["C"])
		require.Len(t, report.Errors, 1)

		user, _, err := store.GetUserByEmail(ctx, "golfer@example.com")
		require.NoError(t, err)
		persisted, err := store.ListRounds(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, persisted, 1)
		require.Equal(t, "A", persisted[0].SourceNativeID)
	}
}

func TestRunCycleSkipsUsersWithoutCredentials(t *testing.T) {
	service, store, runner := setupCoordinator(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := store.CreateUser(ctx, golf.User{Email: "nocreds@example.com", Name: "No Creds"})
	require.NoError(t, err)
	runner.summaries = []scrapers.SessionSummary{{NativeID: "A"}}

	report, err := service.RunCycle(ctx)
	require.NoError(t, err)

	// both users count as processed, only the configured one produced work
	require.EqualValues(t, 2, report.UsersProcessed)
	require.Equal(t, 1, report.SourceCounts[golf.SourceTrackman])
	require.Empty(t, report.Errors)
}

func TestRunCycleRejectedLogin(t *testing.T) {
	service, _, runner := setupCoordinator(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	// Authenticate reports false without a sentinel error: a bad
	// password, not a flaky page. One attempt, one recorded error.
	runner.rejectAuth = true
	runner.summaries = []scrapers.SessionSummary{{NativeID: "A"}}

	report, err := service.RunCycle(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, runner.authAttempts)
	require.Zero(t, report.SourceCounts[golf.SourceTrackman])
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], "rejected")
}
