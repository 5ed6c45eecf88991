package boinc

import (
	"net/http"
	"testing"
	"time"
)

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if client := resolveHTTPClient(custom); client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveMaxBody(t *testing.T) {
	if got := resolveMaxBody(0); got != defaultMaxBodyBytes {
		t.Fatalf("expected default, got %d", got)
	}
	if got := resolveMaxBody(64); got != 64 {
		t.Fatalf("expected 64, got %d", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"120", 2 * time.Minute},
		{"-1", 0},
		{now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"soon", 0},
	}
	for _, tc := range cases {
		if got := parseRetryAfter(tc.raw, now); got != tc.want {
			t.Fatalf("parseRetryAfter(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}
