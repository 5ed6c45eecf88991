package boinc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cfu288/boinc-statistics-image-generator/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func stubClient(status int, body string, header http.Header) (*Client, *http.Request) {
	captured := &http.Request{}
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		*captured = *req
		if header == nil {
			header = make(http.Header)
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		}, nil
	})
	return NewClient(Config{HTTPClient: &http.Client{Transport: rt}, UserAgent: "test-agent"}), captured
}

func TestFetchStatHitsURLAndParses(t *testing.T) {
	client, captured := stubClient(http.StatusOK, sampleWML, nil)

	stat, err := client.FetchStat(context.Background(), "https://boinc.example.org/rosetta/userw.php?id=2375195")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.URL.String() != "https://boinc.example.org/rosetta/userw.php?id=2375195" {
		t.Fatalf("expected url untouched, got %s", captured.URL)
	}
	if captured.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", captured.Method)
	}
	if got := captured.Header.Get("User-Agent"); got != "test-agent" {
		t.Fatalf("expected user agent header, got %q", got)
	}
	if stat.Username != "cfu288" || stat.Source != "Rosetta@home" {
		t.Fatalf("unexpected stat %+v", stat)
	}
}

func TestFetchStatHandlesNon200(t *testing.T) {
	client, _ := stubClient(http.StatusBadGateway, "  upstream down  ", nil)

	_, err := client.FetchStat(context.Background(), "http://example.com/userw.php")
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway || statusErr.Body != "upstream down" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchStatMapsRateLimit(t *testing.T) {
	header := make(http.Header)
	header.Set("Retry-After", "30")
	client, _ := stubClient(http.StatusTooManyRequests, "", header)

	_, err := client.FetchStat(context.Background(), "http://example.com/userw.php")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 30*time.Second || rl.Provider != providerName {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestFetchStatWrapsParseErrors(t *testing.T) {
	client, _ := stubClient(http.StatusOK, "<html>oops</html>", nil)

	_, err := client.FetchStat(context.Background(), "http://example.com/userw.php")
	if !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected malformed payload error, got %v", err)
	}
	if !strings.Contains(err.Error(), "http://example.com/userw.php") {
		t.Fatalf("expected url in error, got %v", err)
	}
}

func TestFetchStatPropagatesTransportErrors(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchStat(context.Background(), "http://example.com"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestFetchStatRejectsBadURL(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.FetchStat(context.Background(), "://nope"); err == nil {
		t.Fatal("expected request build error")
	}
}

func TestFetchStatAgainstHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "1041241" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.wap.wml")
		_, _ = io.WriteString(w, sampleWML)
	}))
	defer srv.Close()

	client := NewClient(Config{HTTPClient: srv.Client()})
	stat, err := client.FetchStat(context.Background(), srv.URL+"/userw.php?id=1041241")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stat.Team != "Team Example" {
		t.Fatalf("unexpected stat %+v", stat)
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
	if c.maxBody != defaultMaxBodyBytes {
		t.Fatalf("expected default body cap, got %d", c.maxBody)
	}
	if c.Name() != "boinc" {
		t.Fatalf("unexpected provider name %s", c.Name())
	}
}
