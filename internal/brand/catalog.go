package brand

// The preset catalog. Entries are treated as read-only configuration; the
// pipeline never mutates a Profile after load.
var catalog = []Profile{
	{
		ID:       "nike",
		Name:     "Nike",
		Category: CategoryAthletic,
		Palette: Palette{
			Primary:    "#000000",
			Secondary:  "#ffffff",
			Accent:     "#ff6b35",
			Background: "#f8f9fa",
		},
		Fonts:      Fonts{Primary: "Futura", Weights: []int{400, 700}},
		Motifs:     []string{"swoosh", "athletic wear", "dynamic lines", "performance gear"},
		Aesthetics: []string{"sporty", "energetic", "bold", "minimalist"},
		Keywords:   []string{"athletic", "performance", "sport", "movement"},
		BasePrompt: "Style transfer to Nike aesthetic. Convert clothing to Nike athletic wear with swoosh logos. " +
			"Add Nike branded shoes, accessories. Use black, white, orange color scheme. " +
			"Maintain athletic, performance-focused styling. Professional sports photography lighting.",
		SoulPrompt: "Authentic Nike brand transformation with deep athletic DNA. Premium sportswear styling " +
			"with signature swoosh elements, performance materials, and iconic Nike aesthetic language.",
		NegativePrompt:    "other brand logos, adidas, puma, under armour, generic sportswear, non-athletic clothing",
		ReferenceImageURL: "https://cdn.brandremix.dev/refs/nike.jpg",
		LogoURL:           "/brands/nike-logo.png",
		Description:       "Iconic athletic brand known for innovation and performance",
		Popularity:        95,
	},
	{
		ID:       "apple",
		Name:     "Apple",
		Category: CategoryTech,
		Palette: Palette{
			Primary:    "#000000",
			Secondary:  "#ffffff",
			Accent:     "#007aff",
			Background: "#f5f5f7",
		},
		Fonts:      Fonts{Primary: "SF Pro Display", Weights: []int{400, 500, 600}},
		Motifs:     []string{"clean lines", "minimalism", "premium materials", "white space"},
		Aesthetics: []string{"elegant", "sophisticated", "minimal", "premium"},
		Keywords:   []string{"technology", "design", "innovation", "premium"},
		BasePrompt: "Style transfer to Apple minimalist aesthetic. Convert to premium, clean design with " +
			"white/black/silver colors. Add Apple devices or accessories if applicable. Use premium materials, " +
			"glass, aluminum textures. Clean, minimalist professional photography with soft lighting.",
		SoulPrompt: "Authentic Apple brand transformation with premium minimalist DNA. Sophisticated design " +
			"language with clean lines, premium materials, and iconic Apple aesthetic principles.",
		NegativePrompt:    "other brand logos, colorful elements, cluttered design, non-premium materials, samsung, google, microsoft logos",
		ReferenceImageURL: "https://cdn.brandremix.dev/refs/apple.jpg",
		LogoURL:           "/brands/apple-logo.png",
		Description:       "Premium technology brand focused on design and innovation",
		Popularity:        98,
	},
	{
		ID:       "supreme",
		Name:     "Supreme",
		Category: CategoryStreetwear,
		Palette: Palette{
			Primary:    "#ff0000",
			Secondary:  "#ffffff",
			Accent:     "#000000",
			Background: "#f8f9fa",
		},
		Fonts:      Fonts{Primary: "Futura", Weights: []int{700}},
		Motifs:     []string{"bold red box logo", "streetwear", "urban culture", "hype"},
		Aesthetics: []string{"bold", "urban", "rebellious", "exclusive"},
		Keywords:   []string{"streetwear", "hype", "urban", "culture"},
		BasePrompt: "Style transfer to Supreme streetwear aesthetic. Convert clothing to Supreme branded pieces " +
			"with red box logos. Add Supreme accessories, caps, bags. Use red, white, black color scheme. " +
			"Urban street photography style with bold composition.",
		SoulPrompt: "Authentic Supreme brand transformation with street culture DNA. Bold streetwear styling " +
			"with signature red box logo elements and exclusive hype aesthetic language.",
		NegativePrompt:    "other streetwear brands, off-white, bape, stussy, generic streetwear, corporate clothing",
		ReferenceImageURL: "https://cdn.brandremix.dev/refs/supreme.jpg",
		LogoURL:           "/brands/supreme-logo.png",
		Description:       "Iconic streetwear brand known for bold design and exclusivity",
		Popularity:        92,
	},
	{
		ID:       "aesop",
		Name:     "Aesop",
		Category: CategoryBeauty,
		Palette: Palette{
			Primary:    "#2c2c2c",
			Secondary:  "#f5f5f5",
			Accent:     "#8b7355",
			Background: "#ffffff",
		},
		Fonts:      Fonts{Primary: "Gill Sans", Weights: []int{300, 400}},
		Motifs:     []string{"apothecary bottles", "earth tones", "natural materials", "craft"},
		Aesthetics: []string{"artisanal", "sophisticated", "natural", "premium"},
		Keywords:   []string{"beauty", "natural", "artisanal", "sophisticated"},
		BasePrompt: "Style transfer to Aesop artisanal aesthetic. Add Aesop beauty products, apothecary bottles. " +
			"Use earth tones - brown, beige, cream colors. Natural materials, wood, stone textures. " +
			"Sophisticated artisanal photography with warm, natural lighting.",
		SoulPrompt: "Authentic Aesop brand transformation with artisanal beauty DNA. Sophisticated natural " +
			"styling with signature apothecary elements and premium craft aesthetic language.",
		NegativePrompt:    "other beauty brands, bright colors, plastic materials, generic beauty products, sephora, ulta",
		ReferenceImageURL: "https://cdn.brandremix.dev/refs/aesop.jpg",
		LogoURL:           "/brands/aesop-logo.png",
		Description:       "Premium beauty brand known for artisanal products and sophisticated design",
		Popularity:        88,
	},
	{
		ID:       "tesla",
		Name:     "Tesla",
		Category: CategoryAutomotive,
		Palette: Palette{
			Primary:    "#000000",
			Secondary:  "#ffffff",
			Accent:     "#cc0000",
			Background: "#f8f9fa",
		},
		Fonts:      Fonts{Primary: "Gotham", Weights: []int{400, 700}},
		Motifs:     []string{"sleek design", "electric", "innovation", "futuristic"},
		Aesthetics: []string{"futuristic", "innovative", "clean", "premium"},
		Keywords:   []string{"automotive", "electric", "innovation", "future"},
		BasePrompt: "Style transfer to Tesla futuristic aesthetic. Add Tesla branding, electric vehicle elements. " +
			"Use black, white, red color scheme. Sleek, innovative design with premium materials. " +
			"Futuristic photography with clean, high-tech lighting.",
		SoulPrompt: "Authentic Tesla brand transformation with innovative automotive DNA. Futuristic styling " +
			"with signature electric vehicle elements and cutting-edge aesthetic language.",
		NegativePrompt:    "other car brands, ford, bmw, mercedes, gas vehicles, traditional automotive, oil, gasoline",
		ReferenceImageURL: "https://cdn.brandremix.dev/refs/tesla.jpg",
		LogoURL:           "/brands/tesla-logo.png",
		Description:       "Innovative automotive brand focused on electric vehicles and sustainability",
		Popularity:        90,
	},
	{
		ID:       "patagonia",
		Name:     "Patagonia",
		Category: CategoryOutdoor,
		Palette: Palette{
			Primary:    "#1e3a8a",
			Secondary:  "#fbbf24",
			Accent:     "#059669",
			Background: "#f3f4f6",
		},
		Fonts:      Fonts{Primary: "Trade Gothic", Weights: []int{400, 700}},
		Motifs:     []string{"mountain landscapes", "outdoor gear", "sustainability", "adventure"},
		Aesthetics: []string{"rugged", "natural", "authentic", "sustainable"},
		Keywords:   []string{"outdoor", "adventure", "nature", "sustainability"},
		BasePrompt: "Style transfer to Patagonia outdoor aesthetic. Convert clothing to Patagonia outdoor gear " +
			"with mountain logos. Add hiking accessories, backpacks. Use blue, yellow, green nature colors. " +
			"Outdoor adventure photography with natural mountain lighting.",
		SoulPrompt: "Authentic Patagonia brand transformation with outdoor adventure DNA. Rugged outdoor " +
			"styling with signature mountain elements and sustainable aesthetic language.",
		NegativePrompt:    "other outdoor brands, north face, columbia, rei, indoor clothing, urban fashion",
		ReferenceImageURL: "https://cdn.brandremix.dev/refs/patagonia.jpg",
		LogoURL:           "/brands/patagonia-logo.png",
		Description:       "Outdoor brand focused on environmental responsibility and adventure",
		Popularity:        86,
	},
}

// Catalog returns a copy of the preset list so callers cannot mutate the
// shared records.
func Catalog() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the profile with the given id.
func Find(id string) (Profile, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}
