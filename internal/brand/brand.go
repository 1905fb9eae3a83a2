package brand

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups brands by market segment.
type Category string

const (
	CategoryAthletic      Category = "athletic"
	CategoryTech          Category = "tech"
	CategoryStreetwear    Category = "streetwear"
	CategoryBeauty        Category = "beauty"
	CategoryAutomotive    Category = "automotive"
	CategoryOutdoor       Category = "outdoor"
	CategoryLuxury        Category = "luxury"
	CategoryEntertainment Category = "entertainment"
	CategoryMusic         Category = "music"
	CategoryTravel        Category = "travel"
)

// DisplayName renders the category for UI consumption.
func (c Category) DisplayName() string {
	return cases.Title(language.Und).String(string(c))
}

// Palette holds the four named color slots every brand carries.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// Values returns the palette colors in slot order, the order prompt text
// enumerates them.
func (p Palette) Values() []string {
	return []string{p.Primary, p.Secondary, p.Accent, p.Background}
}

func (p Palette) complete() bool {
	for _, v := range p.Values() {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Fonts captures typography hints for a brand.
type Fonts struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Weights   []int  `json:"weights"`
}

// Profile is an immutable brand style record from the static catalog.
type Profile struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	Palette Palette `json:"palette"`
	Fonts   Fonts   `json:"fonts"`

	Motifs     []string `json:"motifs"`
	Aesthetics []string `json:"aesthetics"`
	Keywords   []string `json:"keywords"`

	BasePrompt     string `json:"basePrompt"`
	SoulPrompt     string `json:"soulPrompt,omitempty"`
	NegativePrompt string `json:"negativePrompt,omitempty"`

	// ReferenceImageURL locates a curated image representing the brand's
	// photographic style, used as the style-transfer reference when the
	// caller does not supply one.
	ReferenceImageURL string `json:"referenceImageUrl"`

	LogoURL     string `json:"logoUrl"`
	Description string `json:"description"`
	Popularity  int    `json:"popularity"`
}

// Validate checks the invariants the pipeline relies on.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("brand: id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("brand %s: name is required", p.ID)
	}
	if !p.Palette.complete() {
		return fmt.Errorf("brand %s: palette must fill all four slots", p.ID)
	}
	if strings.TrimSpace(p.BasePrompt) == "" {
		return fmt.Errorf("brand %s: basePrompt is required", p.ID)
	}
	return nil
}
