package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"brandremix/internal/infra"
	"brandremix/internal/providers/together"
	"brandremix/internal/providers/vision"
	"brandremix/internal/remix"
)

// RemixService is the slice of the remix service the handlers need.
type RemixService interface {
	Remix(ctx context.Context, req remix.Request) remix.Result
	RemixWithBrand(ctx context.Context, req remix.LegacyRequest) remix.Result
	AnalyzeStyles(ctx context.Context, locators []string) []vision.StyleDescriptor
	ValidateKeys(ctx context.Context) remix.KeyStatus
}

// App holds handler dependencies. Provider clients are built per request
// through newService so a key rotated in the environment takes effect without
// a restart; tests swap the factory for a stub.
type App struct {
	cfg        *infra.Config
	logger     *infra.Logger
	newService func() (RemixService, error)
}

func NewApp(cfg *infra.Config, logger *infra.Logger) *App {
	app := &App{cfg: cfg, logger: logger}
	app.newService = app.buildService
	return app
}

func (a *App) buildService() (RemixService, error) {
	generator, err := together.NewClient(together.Options{
		APIKey:         a.cfg.TogetherAPIKey,
		BaseURL:        a.cfg.TogetherBaseURL,
		Logger:         a.logger,
		RequestTimeout: a.cfg.ProviderTimeout,
	})
	if err != nil {
		return nil, err
	}
	analyzer, err := vision.NewClient(vision.Options{
		APIKey:         a.cfg.OpenAIAPIKey,
		BaseURL:        a.cfg.OpenAIBaseURL,
		Model:          a.cfg.VisionModel,
		Logger:         a.logger,
		RequestTimeout: a.cfg.ProviderTimeout,
	})
	if err != nil {
		return nil, err
	}
	return remix.NewService(remix.Options{
		Generator: generator,
		Analyzer:  analyzer,
		Model:     together.ResolveModel(a.cfg.GenerationModel),
		Logger:    a.logger,
	}), nil
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"success": false, "error": message})
}
