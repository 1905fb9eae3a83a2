package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"brandremix/internal/http/handlers"
	"brandremix/internal/infra"
)

func newTestRouter() http.Handler {
	cfg := &infra.Config{AllowedOrigins: []string{"https://app.example.com"}}
	logger := infra.Logger(zerolog.New(io.Discard))
	app := handlers.NewApp(cfg, &logger)
	return NewRouter(app, cfg, logger)
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouterPreflight(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodOptions, "/v1/remix", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
		t.Fatal("expected the origin to be allowed")
	}
}

func TestRouterRemixWithoutKeys(t *testing.T) {
	// No provider keys configured: the remix route must refuse before any
	// pipeline work.
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/v1/remix", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest && rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 400 or 503, got %d", rec.Code)
	}
}
