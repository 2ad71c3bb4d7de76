package reindex

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failNTimes returns an operation that fails n times before succeeding,
// along with a pointer to its attempt counter.
func failNTimes(n int) (func() error, *int) {
	attempts := 0
	return func() error {
		attempts++
		if attempts <= n {
			return errors.New("transient failure")
		}
		return nil
	}, &attempts
}

func TestRetryWithBackoffFirstTry(t *testing.T) {
	op, attempts := failNTimes(0)

	err := RetryWithBackoff(context.Background(), op, 3, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, *attempts)
}

func TestRetryWithBackoffRecovers(t *testing.T) {
	op, attempts := failNTimes(2)

	err := RetryWithBackoff(context.Background(), op, 5, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 3, *attempts, "should stop retrying once the operation succeeds")
}

func TestRetryWithBackoffExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("persistent failure")
	attempts := 0
	op := func() error {
		attempts++
		return wantErr
	}

	err := RetryWithBackoff(context.Background(), op, 3, 10*time.Millisecond)
	require.Error(t, err)
	assert.Equal(t, wantErr, err, "the operation's last error should surface")
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	op := func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return errors.New("still failing")
	}

	err := RetryWithBackoff(ctx, op, 10, 10*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, attempts, 2, "cancellation should stop further attempts")
}

func TestRetryWithBackoffDelaysGrow(t *testing.T) {
	var gaps []time.Duration
	last := time.Now()
	attempts := 0
	op := func() error {
		attempts++
		if attempts > 1 {
			gaps = append(gaps, time.Since(last))
		}
		last = time.Now()
		if attempts < 4 {
			return errors.New("not yet")
		}
		return nil
	}

	err := RetryWithBackoff(context.Background(), op, 5, 10*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, gaps, 3)

	// Exact timing is scheduler-dependent; only the ordering is stable.
	assert.Greater(t, gaps[1], gaps[0])
	assert.Greater(t, gaps[2], gaps[1])
}

func TestRetryWithBackoffRejectsNonPositiveAttempts(t *testing.T) {
	for _, maxAttempts := range []int{0, -1} {
		attempts := 0
		op := func() error {
			attempts++
			return nil
		}

		err := RetryWithBackoff(context.Background(), op, maxAttempts, 10*time.Millisecond)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
		assert.Zero(t, attempts, "maxAttempts=%d must not run the operation", maxAttempts)
	}
}
