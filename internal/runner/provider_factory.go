package runner

import (
	"log/slog"
	"net/http"

	"github.com/cfu288/boinc-statistics-image-generator/internal/config"
	"github.com/cfu288/boinc-statistics-image-generator/internal/metrics"
	"github.com/cfu288/boinc-statistics-image-generator/internal/providers"
	"github.com/cfu288/boinc-statistics-image-generator/internal/providers/boinc"
)

// providerFactory assembles the BOINC client with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.FetchConfig) providers.StatsProvider {
	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	base := boinc.NewClient(boinc.Config{
		HTTPClient: httpClient,
		UserAgent:  cfg.UserAgent,
	})
	return providers.NewRetryingProvider(base, f.logger, f.metrics, providerName(base), cfg.Retries, cfg.Backoff)
}
