package handlers

import (
	"encoding/json"
	"net/http"

	"brandremix/internal/brand"
	"brandremix/internal/remix"
)

type remixRequest struct {
	ReferenceImage string `json:"referenceImage"`
	ProductImage   string `json:"productImage"`
	BrandID        string `json:"brandId"`
	DeepAnalysis   bool   `json:"deepAnalysis"`
	OriginalWidth  int    `json:"originalWidth"`
	OriginalHeight int    `json:"originalHeight"`
}

type legacyRemixRequest struct {
	Image          string `json:"image"`
	BrandID        string `json:"brandId"`
	DeepAnalysis   bool   `json:"deepAnalysis"`
	OriginalWidth  int    `json:"originalWidth"`
	OriginalHeight int    `json:"originalHeight"`
}

// Remix handles the style-transfer endpoint. The brand is optional; when
// present it must exist in the catalog.
func (a *App) Remix(w http.ResponseWriter, r *http.Request) {
	var req remixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	var profile *brand.Profile
	if req.BrandID != "" && req.BrandID != remix.StyleTransferBrandID {
		b, ok := brand.Find(req.BrandID)
		if !ok {
			a.error(w, http.StatusBadRequest, "Invalid brand selected")
			return
		}
		profile = &b
	}

	if !a.cfg.HasProviderKeys() {
		a.error(w, http.StatusServiceUnavailable, "Together AI or OpenAI API key not configured")
		return
	}
	svc, err := a.newService()
	if err != nil {
		a.logger.Error().Err(err).Msg("handlers: service construction failed")
		a.error(w, http.StatusServiceUnavailable, "Together AI or OpenAI API key not configured")
		return
	}

	result := svc.Remix(r.Context(), remix.Request{
		ReferenceImage: req.ReferenceImage,
		ProductImage:   req.ProductImage,
		Brand:          profile,
		DeepAnalysis:   req.DeepAnalysis,
		OriginalWidth:  req.OriginalWidth,
		OriginalHeight: req.OriginalHeight,
	})
	a.writeResult(w, result)
}

// RemixWithBrand handles the legacy brand-substitution endpoint. Here the
// brand is required.
func (a *App) RemixWithBrand(w http.ResponseWriter, r *http.Request) {
	var req legacyRemixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	b, ok := brand.Find(req.BrandID)
	if !ok {
		a.error(w, http.StatusBadRequest, "Invalid brand selected")
		return
	}

	if !a.cfg.HasProviderKeys() {
		a.error(w, http.StatusServiceUnavailable, "Together AI or OpenAI API key not configured")
		return
	}
	svc, err := a.newService()
	if err != nil {
		a.logger.Error().Err(err).Msg("handlers: service construction failed")
		a.error(w, http.StatusServiceUnavailable, "Together AI or OpenAI API key not configured")
		return
	}

	result := svc.RemixWithBrand(r.Context(), remix.LegacyRequest{
		Image:          req.Image,
		Brand:          b,
		DeepAnalysis:   req.DeepAnalysis,
		OriginalWidth:  req.OriginalWidth,
		OriginalHeight: req.OriginalHeight,
	})
	a.writeResult(w, result)
}

// writeResult maps a pipeline result onto the wire. Failures are already
// user-facing messages; they ship with 200 so the frontend branches on the
// success flag, matching the uniform result contract.
func (a *App) writeResult(w http.ResponseWriter, result remix.Result) {
	a.json(w, http.StatusOK, result)
}
