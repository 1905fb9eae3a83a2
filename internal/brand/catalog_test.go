package brand

import "testing"

func TestCatalogEntriesAreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Catalog() {
		if err := p.Validate(); err != nil {
			t.Fatalf("catalog entry %q invalid: %v", p.ID, err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate brand id %q", p.ID)
		}
		seen[p.ID] = true
		if p.ReferenceImageURL == "" {
			t.Fatalf("brand %q missing reference image", p.ID)
		}
	}
}

func TestFind(t *testing.T) {
	p, ok := Find("nike")
	if !ok {
		t.Fatal("nike not found")
	}
	if p.Name != "Nike" || p.Category != CategoryAthletic {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if _, ok := Find("unknown-brand"); ok {
		t.Fatal("Find should miss on unknown id")
	}
}

func TestPaletteValuesOrder(t *testing.T) {
	p := Palette{Primary: "#1", Secondary: "#2", Accent: "#3", Background: "#4"}
	want := []string{"#1", "#2", "#3", "#4"}
	got := p.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateRejectsIncompletePalette(t *testing.T) {
	p, _ := Find("apple")
	p.Palette.Accent = " "
	if err := p.Validate(); err == nil {
		t.Fatal("expected validation error for empty palette slot")
	}
}

func TestCategoryDisplayName(t *testing.T) {
	if got := CategoryStreetwear.DisplayName(); got != "Streetwear" {
		t.Fatalf("DisplayName = %q, want Streetwear", got)
	}
}
