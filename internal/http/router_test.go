package http_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/userhub/userhub/internal/config"
	httpx "github.com/userhub/userhub/internal/http"
	"github.com/userhub/userhub/internal/observability"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.Config{
		Env:       "test",
		JWTSecret: "test-secret-key",
	}

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// nil pool: health ping short-circuits, no DB traffic happens here
	return httpx.NewRouter(log, nil, cfg, prom, reg)
}

func TestRouterHealthEndpoints(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s got status %d, body=%s", path, w.Code, w.Body.String())
		}
	}
}

func TestRouterServesMetrics(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("/metrics got status %d", w.Code)
	}
}

func TestRouterRejectsNonJSONBody(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("got status %d, want 415, body=%s", w.Code, w.Body.String())
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header to be set")
	}

	// caller-provided ids are echoed back
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "req-42")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-Id"); got != "req-42" {
		t.Fatalf("expected request id to round-trip, got %q", got)
	}
}
