package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"brandremix/internal/http/handlers"
	"brandremix/internal/infra"
	"brandremix/internal/middleware"
)

// NewRouter assembles the API surface. The generation endpoints sit behind a
// per-IP rate limit because each call fans out to paid upstreams.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/brands", app.Brands)
	r.Get("/v1/keys/validate", app.ValidateKeys)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(10, time.Minute))
		r.Post("/v1/remix", app.Remix)
		r.Post("/v1/remix/brand", app.RemixWithBrand)
		r.Post("/v1/styles/analyze", app.AnalyzeStyles)
	})

	return r
}
