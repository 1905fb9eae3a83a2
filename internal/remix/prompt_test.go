package remix

import (
	"strings"
	"testing"

	"brandremix/internal/brand"
	"brandremix/internal/providers/vision"
)

func testBrand() brand.Profile {
	p, ok := brand.Find("nike")
	if !ok {
		panic("nike missing from catalog")
	}
	return p
}

func TestBuildBrandPromptDeterministic(t *testing.T) {
	b := testBrand()
	first := BuildBrandPrompt(b, true)
	second := BuildBrandPrompt(b, true)
	if first != second {
		t.Fatal("prompt must be byte-identical for identical inputs")
	}
}

func TestBuildBrandPromptSegmentOrder(t *testing.T) {
	b := testBrand()
	prompt := BuildBrandPrompt(b, false)

	segments := []string{
		"IMAGE TO IMAGE TRANSFORMATION:",
		b.BasePrompt,
		"TRANSFORM ONLY:",
		"BRAND EXCLUSIVITY:",
		"AVOID:",
		"PHOTOGRAPHY STYLE:",
		"CRITICAL:",
	}
	last := -1
	for _, segment := range segments {
		idx := strings.Index(prompt, segment)
		if idx < 0 {
			t.Fatalf("prompt missing segment %q", segment)
		}
		if idx <= last {
			t.Fatalf("segment %q out of order (index %d after %d)", segment, idx, last)
		}
		last = idx
	}
	// The preservation directive is repeated at both ends on purpose.
	if !strings.HasPrefix(prompt, "IMAGE TO IMAGE TRANSFORMATION:") {
		t.Fatal("prompt must open with the preservation directive")
	}
	if !strings.Contains(prompt[last:], "Keep the same person, same pose") {
		t.Fatal("prompt must close with the preservation reminder")
	}
}

func TestBuildBrandPromptPaletteAndAesthetics(t *testing.T) {
	b := testBrand()
	prompt := BuildBrandPrompt(b, false)
	if !strings.Contains(prompt, strings.Join(b.Palette.Values(), ", ")) {
		t.Fatal("prompt must enumerate the palette in slot order")
	}
	if !strings.Contains(prompt, strings.Join(b.Aesthetics, ", ")) {
		t.Fatal("prompt must enumerate the aesthetics list")
	}
}

func TestBuildBrandPromptOmitsAvoidWithoutNegative(t *testing.T) {
	b := testBrand()
	b.NegativePrompt = ""
	prompt := BuildBrandPrompt(b, false)
	if strings.Contains(prompt, "AVOID:") {
		t.Fatal("prompt must omit the AVOID segment when the brand has no negative prompt")
	}
}

func TestBuildBrandPromptDeepAnalysisSelectsSoulPrompt(t *testing.T) {
	b := testBrand()
	prompt := BuildBrandPrompt(b, true)
	if !strings.Contains(prompt, b.SoulPrompt) {
		t.Fatal("deep analysis must select the soul prompt")
	}
	if strings.Contains(prompt, b.BasePrompt) {
		t.Fatal("deep analysis must not include the base prompt")
	}
}

func TestBuildBrandPromptDeepAnalysisFallsBackToBase(t *testing.T) {
	b := testBrand()
	b.SoulPrompt = ""
	prompt := BuildBrandPrompt(b, true)
	if !strings.Contains(prompt, b.BasePrompt) {
		t.Fatal("missing soul prompt must fall back to the base prompt")
	}
}

func TestBuildStyleTransferPromptCarriesDescriptor(t *testing.T) {
	d := vision.DefaultDescriptor()
	prompt := BuildStyleTransferPrompt(d)
	if !strings.Contains(prompt, "PRODUCT IDENTITY PRESERVATION:") {
		t.Fatal("prompt must open with the identity preservation directive")
	}
	for _, expect := range []string{d.Lighting, d.Mood, d.Background, d.Tone} {
		if !strings.Contains(prompt, expect) {
			t.Fatalf("prompt missing descriptor field %q", expect)
		}
	}
}

func TestBuildStyleTransferPromptHasNoBrandVocabulary(t *testing.T) {
	d := vision.DefaultDescriptor()
	prompt := strings.ToLower(BuildStyleTransferPrompt(d))
	for _, b := range brand.Catalog() {
		if strings.Contains(prompt, strings.ToLower(b.Name)) {
			t.Fatalf("style-transfer prompt must not mention brand %q", b.Name)
		}
	}
}
