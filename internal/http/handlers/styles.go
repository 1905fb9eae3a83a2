package handlers

import (
	"encoding/json"
	"net/http"
)

type analyzeStylesRequest struct {
	Images []string `json:"images"`
}

const maxBatchSize = 10

// AnalyzeStyles runs batch style analysis. Items are isolated: a bad locator
// yields the default descriptor at its index, never an error for the batch.
func (a *App) AnalyzeStyles(w http.ResponseWriter, r *http.Request) {
	var req analyzeStylesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if len(req.Images) == 0 {
		a.error(w, http.StatusBadRequest, "at least one image is required")
		return
	}
	if len(req.Images) > maxBatchSize {
		a.error(w, http.StatusBadRequest, "too many images in one batch")
		return
	}

	svc, err := a.newService()
	if err != nil {
		a.logger.Error().Err(err).Msg("handlers: service construction failed")
		a.error(w, http.StatusServiceUnavailable, "Together AI or OpenAI API key not configured")
		return
	}

	descriptors := svc.AnalyzeStyles(r.Context(), req.Images)
	a.json(w, http.StatusOK, map[string]any{"styles": descriptors})
}
