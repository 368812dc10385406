package apiclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// newHeaderCaptureServer records request headers and answers every call
// with a minimal success payload.
func newHeaderCaptureServer(t *testing.T, contentType, requestID *string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*contentType = r.Header.Get("Content-Type")
		*requestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user_id": 1}`)) // nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}
