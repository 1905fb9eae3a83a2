package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StyleDescriptor summarizes the photographic qualities of an image,
// independent of any brand or product identity. Every field is non-empty:
// fallback values are substituted where the analysis came back blank.
type StyleDescriptor struct {
	Lighting         string   `json:"lighting"`
	Mood             string   `json:"mood"`
	Composition      string   `json:"composition"`
	ColorPalette     []string `json:"colorPalette"`
	Aesthetic        string   `json:"aesthetic"`
	Description      string   `json:"description"`
	PhotographyStyle string   `json:"photographyStyle"`
	Background       string   `json:"background"`
	Tone             string   `json:"tone"`
}

// DefaultDescriptor is the canned analysis used whenever the vision provider
// cannot produce one. Analysis is best-effort and must never block a remix.
func DefaultDescriptor() StyleDescriptor {
	return StyleDescriptor{
		Lighting:         "professional studio lighting",
		Mood:             "clean and modern",
		Composition:      "centered composition",
		ColorPalette:     []string{"#000000", "#ffffff", "#cccccc"},
		Aesthetic:        "minimalist commercial",
		Description:      "clean professional photography with modern aesthetic and balanced composition",
		PhotographyStyle: "commercial product photography",
		Background:       "clean neutral background",
		Tone:             "balanced neutral tones",
	}
}

// Keyword vocabularies for the lenient text parser. The vision model usually
// returns valid JSON; these cover the occasional prose reply.
var (
	lightingKeywords  = []string{"dramatic", "soft", "natural", "studio", "harsh", "ambient"}
	moodKeywords      = []string{"moody", "bright", "elegant", "energetic", "calm", "bold"}
	aestheticKeywords = []string{"minimalist", "luxury", "street", "vintage", "modern", "classic"}
)

// ParseDescriptor turns raw model output into a descriptor. It first attempts
// a strict JSON decode (tolerating markdown fences), then falls back to a
// keyword scan over the raw text. The boolean reports whether the strict
// decode succeeded.
func ParseDescriptor(raw string) (StyleDescriptor, bool) {
	text := stripFences(raw)
	var d StyleDescriptor
	if err := json.Unmarshal([]byte(text), &d); err == nil {
		return fillDefaults(d), true
	}
	return scanText(raw), false
}

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}

func scanText(raw string) StyleDescriptor {
	d := DefaultDescriptor()
	if match := firstKeyword(raw, lightingKeywords); match != "" {
		d.Lighting = match
	}
	if match := firstKeyword(raw, moodKeywords); match != "" {
		d.Mood = match
	}
	if match := firstKeyword(raw, aestheticKeywords); match != "" {
		d.Aesthetic = match
	}
	if desc := strings.TrimSpace(raw); desc != "" {
		if len(desc) > 200 {
			desc = desc[:200] + "..."
		}
		d.Description = desc
	}
	return d
}

func firstKeyword(text string, keywords []string) string {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return keyword
		}
	}
	return ""
}

func fillDefaults(d StyleDescriptor) StyleDescriptor {
	fallback := DefaultDescriptor()
	if strings.TrimSpace(d.Lighting) == "" {
		d.Lighting = fallback.Lighting
	}
	if strings.TrimSpace(d.Mood) == "" {
		d.Mood = fallback.Mood
	}
	if strings.TrimSpace(d.Composition) == "" {
		d.Composition = fallback.Composition
	}
	if len(d.ColorPalette) == 0 {
		d.ColorPalette = fallback.ColorPalette
	}
	if strings.TrimSpace(d.Aesthetic) == "" {
		d.Aesthetic = fallback.Aesthetic
	}
	if strings.TrimSpace(d.Description) == "" {
		d.Description = fallback.Description
	}
	if strings.TrimSpace(d.PhotographyStyle) == "" {
		d.PhotographyStyle = fallback.PhotographyStyle
	}
	if strings.TrimSpace(d.Background) == "" {
		d.Background = fallback.Background
	}
	if strings.TrimSpace(d.Tone) == "" {
		d.Tone = fallback.Tone
	}
	return d
}

// Similarity scores two descriptors in [0,1]: the mean of the exact-match
// fraction over the categorical fields and the overlap of the color lists,
// each weighted equally when both are computable.
func Similarity(a, b StyleDescriptor) float64 {
	categorical := [][2]string{
		{a.Lighting, b.Lighting},
		{a.Mood, b.Mood},
		{a.Aesthetic, b.Aesthetic},
		{a.PhotographyStyle, b.PhotographyStyle},
		{a.Tone, b.Tone},
	}
	matches := 0
	for _, pair := range categorical {
		if pair[0] == pair[1] {
			matches++
		}
	}
	categoricalScore := float64(matches) / float64(len(categorical))

	if len(a.ColorPalette) == 0 || len(b.ColorPalette) == 0 {
		return categoricalScore
	}
	set := make(map[string]struct{}, len(b.ColorPalette))
	for _, color := range b.ColorPalette {
		set[color] = struct{}{}
	}
	common := 0
	for _, color := range a.ColorPalette {
		if _, ok := set[color]; ok {
			common++
		}
	}
	larger := len(a.ColorPalette)
	if len(b.ColorPalette) > larger {
		larger = len(b.ColorPalette)
	}
	colorScore := float64(common) / float64(larger)

	return (categoricalScore + colorScore) / 2
}

// StylePrompt renders a descriptor into generation-prompt text describing the
// photographic treatment to reproduce.
func StylePrompt(d StyleDescriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s photographic treatment with %s emotional atmosphere. ", d.Aesthetic, d.Mood)
	fmt.Fprintf(&sb, "Lighting: %s setup and direction. ", d.Lighting)
	fmt.Fprintf(&sb, "Composition: %s framing approach. ", d.Composition)
	fmt.Fprintf(&sb, "Photography technique: %s execution. ", d.PhotographyStyle)
	fmt.Fprintf(&sb, "Background styling: %s. ", d.Background)
	fmt.Fprintf(&sb, "Color processing: %s treatment. ", d.Tone)
	if len(d.ColorPalette) > 0 {
		fmt.Fprintf(&sb, "Color grading palette: %s (apply as photographic treatment, not product colors). ",
			strings.Join(d.ColorPalette, ", "))
	}
	fmt.Fprintf(&sb, "Photographic essence: %s", d.Description)
	return sb.String()
}
