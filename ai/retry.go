// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrInvalidMaxAttempts indicates a retry policy with no attempts.
var ErrInvalidMaxAttempts = errors.New("max attempts must be greater than 0")

// LinearBackoff sleeps attempt * 1s between attempts.
func LinearBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * time.Second
}

// RetryPolicy is a reusable description of how an external call is
// retried: bounded attempts, a per-attempt timeout, and a backoff
// between attempts. The same policy value is applied uniformly to
// every external-call site.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of attempts (must be > 0).
	MaxAttempts int

	// Timeout bounds a single attempt. When it expires the attempt's
	// context is cancelled, forcibly terminating the in-flight call.
	// Zero means no per-attempt bound.
	Timeout time.Duration

	// Backoff returns the sleep before retrying after the given
	// 1-based attempt number. Nil means no sleep.
	Backoff func(attempt int) time.Duration
}

// DefaultRetryPolicy returns the policy used for general external calls.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Timeout:     60 * time.Second,
		Backoff:     LinearBackoff,
	}
}

// Do runs the operation under the policy.
// Each attempt receives a context bounded by the per-attempt timeout.
// Returns the error from the last attempt if all attempts fail.
func (p RetryPolicy) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	if p.MaxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		// Check context before attempting
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		attemptCtx := ctx
		cancel := func() {}
		if p.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		}
		lastErr = operation(attemptCtx)
		cancel()

		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil // Success
		}

		slog.Debug("operation failed, will retry", "attempt", attempt, "maxAttempts", p.MaxAttempts, "error", lastErr)

		// Don't sleep after the last attempt
		if attempt == p.MaxAttempts {
			break
		}

		var delay time.Duration
		if p.Backoff != nil {
			delay = p.Backoff(attempt)
		}
		if delay <= 0 {
			continue
		}

		// Sleep with context awareness
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			// Continue to next attempt
		}
	}

	return lastErr
}
