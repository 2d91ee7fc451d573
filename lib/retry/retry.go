// Package retry reruns flaky operations with exponential backoff.
// Whether a failure is worth retrying is the caller's call: pass the
// sentinel errors that qualify, anything else passes through on the
// first attempt.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/retry")

type Policy struct {
	MaxAttempts       int
	InitialDelay      time.Duration
	BackoffMultiplier float64
}

// Do runs op up to policy.MaxAttempts times, sleeping between
// attempts. Failures matching none of the retryable sentinels return
// immediately with zero sleeps. The last attempt's error is returned
// unwrapped so callers can keep matching on it with errors.Is.
func Do(ctx context.Context, policy Policy, name string, op func(context.Context) error, retryable ...error) error {
	ctx, span := tracer.Start(ctx, "Do")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "operation",
		Value: attribute.StringValue(name),
	})

	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.BackoffMultiplier <= 0 {
		policy.BackoffMultiplier = 1
	}

	delay := policy.InitialDelay
	var err error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if !isRetryable(err, retryable) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "non-retryable failure")
			return err
		}
		if attempt == policy.MaxAttempts {
			break
		}

		slog.WarnContext(
			ctx, "operation failed, retrying",
			"operation", name,
			"attempt", attempt,
			"max_attempts", policy.MaxAttempts,
			"delay", delay,
			"err", err,
		)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay = time.Duration(float64(delay) * policy.BackoffMultiplier)
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "attempts exhausted")
	return err
}

func isRetryable(err error, retryable []error) bool {
	for _, target := range retryable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
