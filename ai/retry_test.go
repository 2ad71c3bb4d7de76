package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	policy := RetryPolicy{MaxAttempts: 3}

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	policy := RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(attempt int) time.Duration { return time.Millisecond },
	}

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_ExhaustsAttempts(t *testing.T) {
	calls := 0
	wantErr := errors.New("persistent failure")
	policy := RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(attempt int) time.Duration { return time.Millisecond },
	}

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	})

	assert.Equal(t, wantErr, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_InvalidMaxAttempts(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 0}

	err := policy.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.Equal(t, ErrInvalidMaxAttempts, err)
}

func TestRetryPolicy_PerAttemptTimeout(t *testing.T) {
	var seenDeadline bool
	policy := RetryPolicy{
		MaxAttempts: 2,
		Timeout:     10 * time.Millisecond,
		Backoff:     func(attempt int) time.Duration { return time.Millisecond },
	}

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		_, seenDeadline = ctx.Deadline()
		// Simulate an operation that honors cancellation.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	assert.True(t, seenDeadline, "attempt context should carry a deadline")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryPolicy_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	policy := RetryPolicy{MaxAttempts: 3}
	err := policy.Do(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("should not run")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestLinearBackoff(t *testing.T) {
	assert.Equal(t, time.Second, LinearBackoff(1))
	assert.Equal(t, 2*time.Second, LinearBackoff(2))
	assert.Equal(t, 3*time.Second, LinearBackoff(3))
}
