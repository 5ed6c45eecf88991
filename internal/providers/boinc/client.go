package boinc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
	"github.com/cfu288/boinc-statistics-image-generator/internal/providers"
)

// Config controls how the client reaches BOINC project servers.
type Config struct {
	HTTPClient   *http.Client
	UserAgent    string
	MaxBodyBytes int64
}

// Client fetches userw.php pages and maps them to stats records.
type Client struct {
	httpClient httpDoer
	userAgent  string
	maxBody    int64
	now        func() time.Time
}

// NewClient constructs a BOINC client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		userAgent:  cfg.UserAgent,
		maxBody:    resolveMaxBody(cfg.MaxBodyBytes),
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchStat retrieves and parses a single userw.php page.
func (c *Client) FetchStat(ctx context.Context, url string) (stats.UserStat, error) {
	req, err := c.buildRequest(ctx, url)
	if err != nil {
		return stats.UserStat{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return stats.UserStat{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return stats.UserStat{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    fmt.Sprintf("%s: rate limited by %s", providerName, url),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyExcerpt))
		return stats.UserStat{}, &providers.StatusError{
			Provider:   providerName,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	stat, err := Parse(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return stats.UserStat{}, fmt.Errorf("%s: parse %s: %w", providerName, url, err)
	}
	return stat, nil
}

func (c *Client) buildRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}
