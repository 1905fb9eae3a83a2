package together

import "strings"

// Family identifies the request parameter shape a generation model expects.
// The two shapes are mutually incompatible: kontext models take an image_url
// reference while the older diffusion models take a condition_image payload
// plus strength parameters.
type Family string

const (
	FamilyKontext   Family = "kontext"
	FamilyDiffusion Family = "diffusion"
)

// ModelConfig describes a configured generation model. The family tag is
// resolved once here, never re-derived from the identifier at call time.
type ModelConfig struct {
	ID            string
	Name          string
	Family        Family
	OptimalSteps  int
	MaxSteps      int
	MaxResolution int
}

// Models is the registry of known FLUX variants.
var Models = map[string]ModelConfig{
	"black-forest-labs/FLUX.1-kontext-dev": {
		ID:            "black-forest-labs/FLUX.1-kontext-dev",
		Name:          "FLUX.1 Kontext Dev",
		Family:        FamilyKontext,
		OptimalSteps:  28,
		MaxSteps:      50,
		MaxResolution: 1024,
	},
	"black-forest-labs/FLUX.1-dev": {
		ID:            "black-forest-labs/FLUX.1-dev",
		Name:          "FLUX.1 Dev",
		Family:        FamilyDiffusion,
		OptimalSteps:  28,
		MaxSteps:      50,
		MaxResolution: 1024,
	},
	"black-forest-labs/FLUX.1-pro": {
		ID:            "black-forest-labs/FLUX.1-pro",
		Name:          "FLUX.1 Pro",
		Family:        FamilyDiffusion,
		OptimalSteps:  50,
		MaxSteps:      100,
		MaxResolution: 2048,
	},
	"black-forest-labs/FLUX.1-schnell": {
		ID:            "black-forest-labs/FLUX.1-schnell",
		Name:          "FLUX.1 Schnell",
		Family:        FamilyDiffusion,
		OptimalSteps:  4,
		MaxSteps:      12,
		MaxResolution: 1024,
	},
}

// ResolveModel looks up a model identifier in the registry. Unknown
// identifiers still get a usable config; the family marker scan lives only
// here, at configuration time.
func ResolveModel(id string) ModelConfig {
	trimmed := strings.TrimSpace(id)
	if cfg, ok := Models[trimmed]; ok {
		return cfg
	}
	family := FamilyDiffusion
	if strings.Contains(strings.ToLower(trimmed), "kontext") {
		family = FamilyKontext
	}
	return ModelConfig{
		ID:            trimmed,
		Name:          trimmed,
		Family:        family,
		OptimalSteps:  28,
		MaxSteps:      50,
		MaxResolution: 1024,
	}
}
