package remix

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"brandremix/internal/brand"
	"brandremix/internal/imageref"
	"brandremix/internal/providers/together"
	"brandremix/internal/providers/vision"
)

type stubGenerator struct {
	images     []together.Image
	err        error
	calls      int
	keyChecks  int
	lastParams together.GenerateParams
	noCreds    bool
	keyValid   bool
}

func (s *stubGenerator) GenerateImage(_ context.Context, params together.GenerateParams) ([]together.Image, error) {
	s.calls++
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	out := make([]together.Image, len(s.images))
	copy(out, s.images)
	for i := range out {
		out[i].Model = params.Model.ID
		out[i].Prompt = params.Prompt
	}
	return out, nil
}

func (s *stubGenerator) ValidateKey(context.Context) bool {
	s.keyChecks++
	return s.keyValid
}
func (s *stubGenerator) HasCredentials() bool { return !s.noCreds }

type stubAnalyzer struct {
	descriptor vision.StyleDescriptor
	calls      int
	lastRef    string
	noCreds    bool
	keyValid   bool
}

func (s *stubAnalyzer) AnalyzeImageStyle(_ context.Context, imageRef string) vision.StyleDescriptor {
	s.calls++
	s.lastRef = imageRef
	return s.descriptor
}

func (s *stubAnalyzer) AnalyzeBatch(ctx context.Context, imageRefs []string) []vision.StyleDescriptor {
	out := make([]vision.StyleDescriptor, len(imageRefs))
	for i, ref := range imageRefs {
		if ref == "" {
			out[i] = vision.DefaultDescriptor()
			continue
		}
		out[i] = s.AnalyzeImageStyle(ctx, ref)
	}
	return out
}

func (s *stubAnalyzer) ValidateKey(context.Context) bool { return s.keyValid }
func (s *stubAnalyzer) HasCredentials() bool             { return !s.noCreds }

func fourImages() []together.Image {
	return []together.Image{
		{ID: "img-1", URL: "https://cdn.example.com/1.png"},
		{ID: "img-2", URL: "https://cdn.example.com/2.png"},
		{ID: "img-3", URL: "https://cdn.example.com/3.png"},
		{ID: "img-4", URL: "https://cdn.example.com/4.png"},
	}
}

func analyzedDescriptor() vision.StyleDescriptor {
	return vision.StyleDescriptor{
		Lighting:         "dramatic studio lighting",
		Mood:             "moody",
		Composition:      "centered product shot",
		ColorPalette:     []string{"#111111", "#eeeeee"},
		Aesthetic:        "luxury",
		Description:      "high-contrast editorial product photography",
		PhotographyStyle: "editorial product photography",
		Background:       "dark gradient backdrop",
		Tone:             "premium",
	}
}

func newTestService(gen *stubGenerator, an *stubAnalyzer) *Service {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewService(Options{
		Generator: gen,
		Analyzer:  an,
		Now:       func() time.Time { return fixed },
	})
}

func TestRemixStyleTransferWithoutBrand(t *testing.T) {
	gen := &stubGenerator{images: fourImages(), keyValid: true}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	res := svc.Remix(context.Background(), Request{
		ReferenceImage: "https://example.com/reference.jpg",
		ProductImage:   "https://example.com/product.jpg",
	})
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if len(res.Images) != VariationCount {
		t.Fatalf("expected %d variations, got %d", VariationCount, len(res.Images))
	}
	for _, img := range res.Images {
		if img.BrandID != StyleTransferBrandID {
			t.Fatalf("expected brand id %q, got %q", StyleTransferBrandID, img.BrandID)
		}
		if img.ReferenceImage != "https://example.com/reference.jpg" {
			t.Fatalf("record must carry the reference image, got %q", img.ReferenceImage)
		}
	}
	if an.calls != 1 {
		t.Fatalf("expected one style analysis, got %d", an.calls)
	}
	if res.StyleAnalysis == nil || res.StyleAnalysis.Mood != "moody" {
		t.Fatal("result must carry the reference style analysis")
	}
	if gen.lastParams.N != VariationCount {
		t.Fatalf("expected N=%d, got %d", VariationCount, gen.lastParams.N)
	}
	if !strings.Contains(gen.lastParams.Prompt, "PRODUCT IDENTITY PRESERVATION:") {
		t.Fatal("style-transfer remix must use the style-transfer prompt")
	}
}

func TestRemixBrandSuppliesReferenceFallback(t *testing.T) {
	gen := &stubGenerator{images: fourImages(), keyValid: true}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	nike, _ := brand.Find("nike")
	res := svc.Remix(context.Background(), Request{
		ProductImage: "https://example.com/product.jpg",
		Brand:        &nike,
	})
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if an.lastRef != nike.ReferenceImageURL {
		t.Fatalf("expected brand reference %q to be analyzed, got %q", nike.ReferenceImageURL, an.lastRef)
	}
	for _, img := range res.Images {
		if img.BrandID != nike.ID {
			t.Fatalf("expected brand id %q, got %q", nike.ID, img.BrandID)
		}
	}
	// Even with a brand attached, the style-transfer prompt stays brand-free.
	if strings.Contains(gen.lastParams.Prompt, nike.Name) {
		t.Fatal("style-transfer prompt must not embed brand vocabulary")
	}
}

func TestRemixMissingInputShortCircuits(t *testing.T) {
	gen := &stubGenerator{images: fourImages(), keyValid: true}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	res := svc.Remix(context.Background(), Request{
		ReferenceImage: "https://example.com/reference.jpg",
	})
	if res.Success {
		t.Fatal("expected failure for missing product image")
	}
	if res.Error != "Image and brand selection required" {
		t.Fatalf("unexpected error message %q", res.Error)
	}
	if gen.calls != 0 || gen.keyChecks != 0 || an.calls != 0 {
		t.Fatal("missing input must fail before any provider call")
	}
}

func TestRemixFailsFastOnRevokedKey(t *testing.T) {
	// Key present but rejected by the provider: the liveness gate must stop
	// the pipeline before a generation call is committed.
	gen := &stubGenerator{images: fourImages()}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	res := svc.Remix(context.Background(), Request{
		ReferenceImage: "https://example.com/reference.jpg",
		ProductImage:   "https://example.com/product.jpg",
	})
	if res.Success {
		t.Fatal("expected failure for a revoked generation key")
	}
	if res.Error != UserMessage(FailureCredential) {
		t.Fatalf("unexpected error message %q", res.Error)
	}
	if gen.keyChecks != 1 {
		t.Fatalf("expected one liveness check, got %d", gen.keyChecks)
	}
	if gen.calls != 0 {
		t.Fatal("revoked key must prevent the generation call")
	}
	if an.calls != 0 {
		t.Fatal("revoked key must prevent the analysis call")
	}

	nike, _ := brand.Find("nike")
	legacy := svc.RemixWithBrand(context.Background(), LegacyRequest{
		Image: "https://example.com/lifestyle.jpg",
		Brand: nike,
	})
	if legacy.Success || legacy.Error != UserMessage(FailureCredential) {
		t.Fatalf("legacy pipeline must fail the same way, got %+v", legacy)
	}
	if gen.calls != 0 {
		t.Fatal("revoked key must prevent the legacy generation call")
	}
}

func TestRemixMissingCredentials(t *testing.T) {
	gen := &stubGenerator{noCreds: true}
	an := &stubAnalyzer{}
	svc := newTestService(gen, an)

	res := svc.Remix(context.Background(), Request{
		ReferenceImage: "https://example.com/reference.jpg",
		ProductImage:   "https://example.com/product.jpg",
	})
	if res.Success {
		t.Fatal("expected failure without provider credentials")
	}
	if res.Error != UserMessage(FailureCredential) {
		t.Fatalf("unexpected error message %q", res.Error)
	}
	if gen.calls != 0 {
		t.Fatal("credential check must fail before any provider call")
	}
}

func TestRemixRejectsLocalReference(t *testing.T) {
	gen := &stubGenerator{images: fourImages(), keyValid: true}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	res := svc.Remix(context.Background(), Request{
		ReferenceImage: "https://example.com/reference.jpg",
		ProductImage:   "http://localhost:3000/uploads/shot.png",
	})
	if res.Success {
		t.Fatal("expected failure for a localhost product image")
	}
	if res.Error != UserMessage(FailureLocalReference) {
		t.Fatalf("unexpected error message %q", res.Error)
	}
	if gen.calls != 0 {
		t.Fatal("resolution failure must prevent generation")
	}
}

func TestRemixWithBrandLegacyPipeline(t *testing.T) {
	gen := &stubGenerator{images: fourImages(), keyValid: true}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	nike, _ := brand.Find("nike")
	res := svc.RemixWithBrand(context.Background(), LegacyRequest{
		Image:        "https://example.com/lifestyle.jpg",
		Brand:        nike,
		DeepAnalysis: true,
	})
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if len(res.Images) != VariationCount {
		t.Fatalf("expected %d variations, got %d", VariationCount, len(res.Images))
	}
	if res.StyleAnalysis != nil {
		t.Fatal("legacy pipeline must not run style analysis")
	}
	if an.calls != 0 {
		t.Fatalf("legacy pipeline must not call the analyzer, got %d calls", an.calls)
	}
	if !strings.Contains(gen.lastParams.Prompt, nike.SoulPrompt) {
		t.Fatal("deep analysis must select the soul prompt")
	}
	if gen.lastParams.Model.Family != together.FamilyKontext {
		t.Fatalf("default model must be in the kontext family, got %q", gen.lastParams.Model.Family)
	}
	for _, img := range res.Images {
		if img.BrandID != nike.ID {
			t.Fatalf("expected brand id %q, got %q", nike.ID, img.BrandID)
		}
		if !img.DeepAnalysis {
			t.Fatal("record must carry the deep analysis flag")
		}
	}
}

func TestRemixClassifiesGenerationFailures(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureCategory
	}{
		{"provider auth", errors.New("together: generate image: provider rejected: Unauthorized"), FailureCredential},
		{"bad image", errors.New("together: generate image: provider rejected: invalid image in condition_image"), FailureInvalidImage},
		{"missing key", together.ErrMissingAPIKey, FailureCredential},
		{"opaque", errors.New("together: generate image: status 500"), FailureProvider},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{err: tc.err, keyValid: true}
			an := &stubAnalyzer{descriptor: analyzedDescriptor()}
			svc := newTestService(gen, an)

			res := svc.Remix(context.Background(), Request{
				ReferenceImage: "https://example.com/reference.jpg",
				ProductImage:   "https://example.com/product.jpg",
			})
			if res.Success {
				t.Fatal("expected failure")
			}
			if res.Error != UserMessage(tc.want) {
				t.Fatalf("expected message for %q, got %q", tc.want, res.Error)
			}
		})
	}
}

func TestRemixDefaultsDimensions(t *testing.T) {
	gen := &stubGenerator{images: fourImages(), keyValid: true}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	svc.Remix(context.Background(), Request{
		ReferenceImage: "https://example.com/reference.jpg",
		ProductImage:   "https://example.com/product.jpg",
	})
	if gen.lastParams.Width != 1080 || gen.lastParams.Height != 1080 {
		t.Fatalf("expected square 1080 default, got %dx%d", gen.lastParams.Width, gen.lastParams.Height)
	}
}

func TestAnalyzeStylesIsolatesBadLocators(t *testing.T) {
	gen := &stubGenerator{}
	an := &stubAnalyzer{descriptor: analyzedDescriptor()}
	svc := newTestService(gen, an)

	results := svc.AnalyzeStyles(context.Background(), []string{
		"https://example.com/a.jpg",
		"not-an-image",
		"https://example.com/b.jpg",
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(results))
	}
	if results[0].Mood != "moody" || results[2].Mood != "moody" {
		t.Fatal("resolvable locators must be analyzed")
	}
	if results[1].Mood != vision.DefaultDescriptor().Mood {
		t.Fatal("unresolvable locator must degrade to the default descriptor")
	}
}

func TestValidateKeys(t *testing.T) {
	cases := []struct {
		name       string
		generation bool
		vision     bool
		valid      bool
	}{
		{"both valid", true, true, true},
		{"generation only", true, false, false},
		{"vision only", false, true, false},
		{"neither", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{keyValid: tc.generation}
			an := &stubAnalyzer{keyValid: tc.vision}
			svc := newTestService(gen, an)

			status := svc.ValidateKeys(context.Background())
			if status.Generation != tc.generation || status.Vision != tc.vision {
				t.Fatalf("unexpected status %+v", status)
			}
			if status.Valid() != tc.valid {
				t.Fatalf("expected Valid()=%v, got %v", tc.valid, status.Valid())
			}
		})
	}
}

func TestClassifySentinelsBeatMessageScan(t *testing.T) {
	// A wrapped sentinel whose text also matches the message scan must still
	// classify by sentinel.
	wrapped := fmt.Errorf("imageref: resolve locator with api key hint: %w", imageref.ErrLocalReference)
	if got := Classify(wrapped); got != FailureLocalReference {
		t.Fatalf("expected local reference, got %q", got)
	}
}
