package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errFlaky = fmt.Errorf("transient wobble")
var errHopeless = fmt.Errorf("terminal condition")

func TestRetriesTransientFailureOnce(t *testing.T) {
	policy := Policy{MaxAttempts: 3, InitialDelay: time.Millisecond, BackoffMultiplier: 2}

	attempts := 0
	err := Do(context.Background(), policy, "flaky_op", func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return errFlaky
		}
		return nil
	}, errFlaky)

	require.NoError(t, err)
	// exactly one retry: first attempt fails, second succeeds
	require.Equal(t, 2, attempts)
}

func TestNonRetryablePassesThroughImmediately(t *testing.T) {
	policy := Policy{MaxAttempts: 5, InitialDelay: time.Millisecond, BackoffMultiplier: 2}

	attempts := 0
	err := Do(context.Background(), policy, "doomed_op", func(ctx context.Context) error {
		attempts++
		return errHopeless
	}, errFlaky)

	require.ErrorIs(t, err, errHopeless)
	require.Equal(t, 1, attempts)
}

func TestExhaustionReturnsLastError(t *testing.T) {
	policy := Policy{MaxAttempts: 3, InitialDelay: time.Millisecond, BackoffMultiplier: 1}

	attempts := 0
	err := Do(context.Background(), policy, "always_failing", func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("attempt %d: %w", attempts, errFlaky)
	}, errFlaky)

	require.ErrorIs(t, err, errFlaky)
	require.ErrorContains(t, err, "attempt 3")
	require.Equal(t, 3, attempts)
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	policy := Policy{MaxAttempts: 2, InitialDelay: time.Millisecond, BackoffMultiplier: 1}

	attempts := 0
	err := Do(context.Background(), policy, "wrapping_op", func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return fmt.Errorf("navigating to /sessions: %w", errFlaky)
		}
		return nil
	}, errFlaky)

	require.NoError(t, err)
	require.Equal(t, 2, attempts)
}

func TestContextCancellationStopsBackoff(t *testing.T) {
	policy := Policy{MaxAttempts: 10, InitialDelay: time.Hour, BackoffMultiplier: 1}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := Do(ctx, policy, "cancelled_op", func(ctx context.Context) error {
		return errFlaky
	}, errFlaky)

	require.ErrorIs(t, err, context.Canceled)
}
