package config

import "time"

// FetchConfig controls how upstream BOINC endpoints are requested.
type FetchConfig struct {
	Timeout   time.Duration
	Retries   int // total attempts per source, 1 disables retrying
	Backoff   time.Duration
	UserAgent string
}

func loadFetch() FetchConfig {
	return FetchConfig{
		Timeout:   durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Retries:   intEnvOrDefault(envFetchRetries, defaultFetchRetries),
		Backoff:   durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
		UserAgent: envOrDefault(envUserAgent, defaultUserAgent),
	}
}
