package handlers

import "net/http"

// ValidateKeys probes both provider credentials. Missing keys short-circuit
// to an all-false status without any upstream call.
func (a *App) ValidateKeys(w http.ResponseWriter, r *http.Request) {
	svc, err := a.newService()
	if err != nil {
		a.logger.Error().Err(err).Msg("handlers: service construction failed")
		a.error(w, http.StatusServiceUnavailable, "Together AI or OpenAI API key not configured")
		return
	}
	status := svc.ValidateKeys(r.Context())
	a.json(w, http.StatusOK, map[string]any{
		"valid":      status.Valid(),
		"generation": status.Generation,
		"vision":     status.Vision,
	})
}
