package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewWMLServer serves the given WML bodies keyed by request path; unknown paths get 404.
// The server is closed when the test ends.
func NewWMLServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.wap.wml")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}
