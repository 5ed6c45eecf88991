package providers

import (
	"context"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
)

// StatsProvider fetches one user's statistics from a single upstream endpoint.
// url is the full userw address; providers must not rewrite it.
type StatsProvider interface {
	FetchStat(ctx context.Context, url string) (stats.UserStat, error)
}

// ProviderFunc adapts a plain function to StatsProvider.
type ProviderFunc func(ctx context.Context, url string) (stats.UserStat, error)

// FetchStat calls f.
func (f ProviderFunc) FetchStat(ctx context.Context, url string) (stats.UserStat, error) {
	return f(ctx, url)
}
