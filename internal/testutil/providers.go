package testutil

import (
	"context"
	"fmt"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
)

// MapProvider serves records keyed by url and errors for unknown urls.
type MapProvider map[string]stats.UserStat

func (p MapProvider) FetchStat(ctx context.Context, url string) (stats.UserStat, error) {
	_ = ctx
	stat, ok := p[url]
	if !ok {
		return stats.UserStat{}, fmt.Errorf("no stat for %s", url)
	}
	return stat, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchStat(ctx context.Context, url string) (stats.UserStat, error) {
	_ = ctx
	_ = url
	return stats.UserStat{}, p.Err
}
