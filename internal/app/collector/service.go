package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
	"github.com/cfu288/boinc-statistics-image-generator/internal/logging"
	"github.com/cfu288/boinc-statistics-image-generator/internal/providers"
)

// ErrNoSources is returned when Collect is asked to fetch nothing.
var ErrNoSources = errors.New("no stats sources configured")

// Service fetches every source concurrently and returns the records sorted by total credit.
type Service struct {
	provider providers.StatsProvider
	logger   *slog.Logger
}

// NewService constructs a Service backed by the given provider.
func NewService(provider providers.StatsProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Collect fetches all urls at once and waits for every one of them.
// The first failure cancels the remaining requests and fails the whole collection.
func (s *Service) Collect(ctx context.Context, urls []string) ([]stats.UserStat, error) {
	if len(urls) == 0 {
		return nil, ErrNoSources
	}
	if s == nil || s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	results := make([]stats.UserStat, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			start := time.Now()
			stat, err := s.provider.FetchStat(gctx, url)
			if err != nil {
				return fmt.Errorf("%s: %w", url, err)
			}
			logging.Debug(logging.FromContext(ctx, s.logger), "source fetched",
				logging.FieldURL, url,
				logging.FieldDurationMS, time.Since(start).Milliseconds(),
			)
			results[i] = stat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.SortByTotalCredit(results)
	return results, nil
}
