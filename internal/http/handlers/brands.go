package handlers

import (
	"net/http"

	"brandremix/internal/brand"
)

type brandSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors"`
	Aesthetics  []string `json:"aesthetics"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	Popularity  int      `json:"popularity"`
}

func (a *App) Brands(w http.ResponseWriter, r *http.Request) {
	catalog := brand.Catalog()
	out := make([]brandSummary, 0, len(catalog))
	for _, b := range catalog {
		out = append(out, brandSummary{
			ID:          b.ID,
			Name:        b.Name,
			Category:    b.Category.DisplayName(),
			Colors:      b.Palette.Values(),
			Aesthetics:  b.Aesthetics,
			Description: b.Description,
			LogoURL:     b.LogoURL,
			Popularity:  b.Popularity,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"brands": out})
}
