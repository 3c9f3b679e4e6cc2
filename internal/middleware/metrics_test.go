package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"skyops/crewboard/internal/metrics"
)

func TestRequestIDFlowsThroughMetricsMiddleware(t *testing.T) {
	reg := metrics.NewMetricsRegistry()

	var seen string
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(MetricsMiddleware(reg))
	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		seen = GetRequestID(req.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", rr.Code)
	}
	if seen != "req-123" {
		t.Errorf("request id in context = %q, want req-123", seen)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID header = %q, want req-123", got)
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("request id = %q, want empty", id)
	}
}
