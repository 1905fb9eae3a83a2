package remix

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"brandremix/internal/brand"
	"brandremix/internal/imageref"
	"brandremix/internal/infra"
	"brandremix/internal/providers/together"
	"brandremix/internal/providers/vision"
)

// VariationCount is the number of variations requested per remix. Fixed by
// product design: the UI renders a 2x2 grid.
const VariationCount = 4

// Generator is the slice of the generation client the orchestrator needs.
type Generator interface {
	GenerateImage(ctx context.Context, params together.GenerateParams) ([]together.Image, error)
	ValidateKey(ctx context.Context) bool
	HasCredentials() bool
}

// Analyzer is the slice of the style analysis client the orchestrator needs.
type Analyzer interface {
	AnalyzeImageStyle(ctx context.Context, imageRef string) vision.StyleDescriptor
	AnalyzeBatch(ctx context.Context, imageRefs []string) []vision.StyleDescriptor
	ValidateKey(ctx context.Context) bool
	HasCredentials() bool
}

// Options wires a Service. Generator and Analyzer are required; the rest
// default sensibly.
type Options struct {
	Generator Generator
	Analyzer  Analyzer
	Resolver  *imageref.Resolver
	Model     together.ModelConfig
	Logger    *infra.Logger
	Now       func() time.Time
	NewID     func() string
}

// Service coordinates one remix request: validation, optional style
// analysis, prompt synthesis, generation, and failure translation. Callers
// construct a fresh Service per request from their own credentials; nothing
// is shared across concurrent requests.
type Service struct {
	generator Generator
	analyzer  Analyzer
	resolver  *imageref.Resolver
	model     together.ModelConfig
	logger    *infra.Logger
	now       func() time.Time
}

// NewService builds a Service from options.
func NewService(opts Options) *Service {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = imageref.NewResolver(nil)
	}
	model := opts.Model
	if model.ID == "" {
		model = together.ResolveModel("black-forest-labs/FLUX.1-kontext-dev")
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		generator: opts.Generator,
		analyzer:  opts.Analyzer,
		resolver:  resolver,
		model:     model,
		logger:    logger,
		now:       now,
	}
}

// Request describes a style-transfer remix: the reference image contributes
// photographic style, the product image is the subject to re-stage. Brand is
// optional; when present it supplies the record's brand id and, if the caller
// omitted a reference, the brand's curated reference image.
type Request struct {
	ReferenceImage string
	ProductImage   string
	Brand          *brand.Profile
	DeepAnalysis   bool
	OriginalWidth  int
	OriginalHeight int
}

// LegacyRequest is the older brand-substitution shape: one image, one brand,
// no style analysis.
type LegacyRequest struct {
	Image          string
	Brand          brand.Profile
	DeepAnalysis   bool
	OriginalWidth  int
	OriginalHeight int
}

// GeneratedImage is one immutable output variation.
type GeneratedImage struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Model          string    `json:"model"`
	Prompt         string    `json:"prompt"`
	BrandID        string    `json:"brandId"`
	DeepAnalysis   bool      `json:"deepAnalysis"`
	GeneratedAt    time.Time `json:"generatedAt"`
	ReferenceImage string    `json:"referenceImage,omitempty"`
}

// Result is the uniform outcome of every remix entry point. The service never
// panics or returns an error past this boundary; failures arrive as
// Success=false with a category-specific message.
type Result struct {
	Success       bool                    `json:"success"`
	Images        []GeneratedImage        `json:"images,omitempty"`
	StyleAnalysis *vision.StyleDescriptor `json:"styleAnalysis,omitempty"`
	Error         string                  `json:"error,omitempty"`
}

// Remix runs the style-transfer pipeline:
// validate inputs and key -> analyze reference -> build prompt -> generate
// -> assemble. The key liveness probe runs before any pipeline work so a
// revoked credential fails fast instead of surfacing as a late provider
// error. Style analysis is best-effort and cannot fail the request.
func (s *Service) Remix(ctx context.Context, req Request) Result {
	referenceImage := strings.TrimSpace(req.ReferenceImage)
	if referenceImage == "" && req.Brand != nil {
		referenceImage = req.Brand.ReferenceImageURL
	}
	productImage := strings.TrimSpace(req.ProductImage)
	if referenceImage == "" || productImage == "" {
		return failure(FailureMissingInput)
	}
	if !s.generator.HasCredentials() || !s.analyzer.HasCredentials() {
		return failure(FailureCredential)
	}
	if !s.generator.ValidateKey(ctx) {
		s.logger.Warn().Msg("remix: generation key failed liveness check")
		return failure(FailureCredential)
	}

	resolvedReference, err := s.resolver.Resolve(ctx, referenceImage)
	if err != nil {
		s.logger.Warn().Err(err).Msg("remix: reference image rejected")
		return failure(Classify(err))
	}
	resolvedProduct, err := s.resolver.Resolve(ctx, productImage)
	if err != nil {
		s.logger.Warn().Err(err).Msg("remix: product image rejected")
		return failure(Classify(err))
	}

	descriptor := s.analyzer.AnalyzeImageStyle(ctx, resolvedReference)
	prompt := BuildStyleTransferPrompt(descriptor)

	images, err := s.generate(ctx, prompt, resolvedProduct, req.OriginalWidth, req.OriginalHeight)
	if err != nil {
		category := Classify(err)
		s.logger.Error().Err(err).Str("category", string(category)).Msg("remix: generation failed")
		return failure(category)
	}

	brandID := StyleTransferBrandID
	if req.Brand != nil {
		brandID = req.Brand.ID
	}
	records := s.assemble(images, brandID, req.DeepAnalysis, referenceImage)
	return Result{Success: true, Images: records, StyleAnalysis: &descriptor}
}

// RemixWithBrand runs the legacy brand-substitution pipeline. It shares the
// generation step with Remix and differs only in prompt strategy: no style
// analysis, brand vocabulary embedded directly.
func (s *Service) RemixWithBrand(ctx context.Context, req LegacyRequest) Result {
	image := strings.TrimSpace(req.Image)
	if image == "" || strings.TrimSpace(req.Brand.ID) == "" {
		return failure(FailureMissingInput)
	}
	if !s.generator.HasCredentials() || !s.analyzer.HasCredentials() {
		return failure(FailureCredential)
	}
	if !s.generator.ValidateKey(ctx) {
		s.logger.Warn().Msg("remix: generation key failed liveness check")
		return failure(FailureCredential)
	}

	resolved, err := s.resolver.Resolve(ctx, image)
	if err != nil {
		s.logger.Warn().Err(err).Msg("remix: image rejected")
		return failure(Classify(err))
	}

	prompt := BuildBrandPrompt(req.Brand, req.DeepAnalysis)
	images, err := s.generate(ctx, prompt, resolved, req.OriginalWidth, req.OriginalHeight)
	if err != nil {
		category := Classify(err)
		s.logger.Error().Err(err).Str("category", string(category)).Msg("remix: generation failed")
		return failure(category)
	}

	records := s.assemble(images, req.Brand.ID, req.DeepAnalysis, "")
	return Result{Success: true, Images: records}
}

// AnalyzeStyles resolves and analyzes many locators independently. A locator
// that cannot be resolved degrades to the default descriptor, matching the
// per-item isolation of the analyzer itself.
func (s *Service) AnalyzeStyles(ctx context.Context, locators []string) []vision.StyleDescriptor {
	resolved := make([]string, len(locators))
	for i, locator := range locators {
		ref, err := s.resolver.Resolve(ctx, locator)
		if err != nil {
			s.logger.Warn().Err(err).Int("index", i).Msg("remix: batch locator rejected")
			continue
		}
		resolved[i] = ref
	}
	return s.analyzer.AnalyzeBatch(ctx, resolved)
}

func (s *Service) generate(ctx context.Context, prompt, imageRef string, width, height int) ([]together.Image, error) {
	if width <= 0 {
		width = 1080
	}
	if height <= 0 {
		height = 1080
	}
	return s.generator.GenerateImage(ctx, together.GenerateParams{
		Model:          s.model,
		Prompt:         prompt,
		ImageRef:       imageRef,
		Width:          width,
		Height:         height,
		N:              VariationCount,
		ResponseFormat: "url",
	})
}

func (s *Service) assemble(images []together.Image, brandID string, deepAnalysis bool, referenceImage string) []GeneratedImage {
	createdAt := s.now()
	records := make([]GeneratedImage, 0, len(images))
	for _, img := range images {
		records = append(records, GeneratedImage{
			ID:             img.ID,
			URL:            img.URL,
			Model:          img.Model,
			Prompt:         img.Prompt,
			BrandID:        brandID,
			DeepAnalysis:   deepAnalysis,
			GeneratedAt:    createdAt,
			ReferenceImage: referenceImage,
		})
	}
	return records
}
