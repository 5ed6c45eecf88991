package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
	"github.com/cfu288/boinc-statistics-image-generator/internal/logging"
	"github.com/cfu288/boinc-statistics-image-generator/internal/metrics"
)

const (
	defaultRetryAttempts = 1
	defaultBackoff       = 500 * time.Millisecond
	maxBackoff           = 10 * time.Second
	maxRetryAfter        = time.Minute
)

// retryAfterBackOff raises the next delay to the upstream Retry-After hint, once.
type retryAfterBackOff struct {
	backoff.BackOff
	hint time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	hint := b.hint
	b.hint = 0
	if next == backoff.Stop {
		return next
	}
	if hint > maxRetryAfter {
		hint = maxRetryAfter
	}
	return max(next, hint)
}

// retryingProvider wraps a StatsProvider with retry/backoff behavior and per-attempt metrics.
type retryingProvider struct {
	inner       StatsProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// A maxAttempts of 1 performs a single attempt, which is still timed and recorded.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchStat(ctx context.Context, url string) (stats.UserStat, error) {
	if r == nil || r.inner == nil {
		return stats.UserStat{}, ErrProviderUnavailable
	}

	attempt := 0
	delays := &retryAfterBackOff{BackOff: r.newBackOff()}
	op := func() (stats.UserStat, error) {
		attempt++
		start := time.Now()
		stat, err := r.inner.FetchStat(ctx, url)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return stat, nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			delays.hint = rl.RetryAfter
		}
		if isPermanent(err) {
			return stats.UserStat{}, backoff.Permanent(err)
		}
		return stats.UserStat{}, err
	}

	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			logging.FieldURL, url,
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			"error", err,
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(delays, uint64(r.maxAttempts-1)), ctx)
	stat, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		args := []any{
			logging.FieldURL, url,
			"attempts", attempt,
			"error", err,
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			args = append(args, logging.FieldStatusCode, statusErr.StatusCode)
		}
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed", args...)
		return stats.UserStat{}, err
	}
	return stat, nil
}
