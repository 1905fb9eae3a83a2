package remix

import (
	"fmt"
	"strings"

	"brandremix/internal/brand"
	"brandremix/internal/providers/vision"
)

// Strategy names the two mutually exclusive prompt-construction modes.
type Strategy string

const (
	// StrategyBrandSubstitution rewrites the subject's clothing and branding
	// toward a target brand while keeping the person and scene fixed.
	StrategyBrandSubstitution Strategy = "brand_substitution"
	// StrategyStyleTransfer keeps the product untouched and transplants the
	// photographic treatment of a reference image.
	StrategyStyleTransfer Strategy = "style_transfer"
)

// StyleTransferBrandID marks records generated without a brand profile.
const StyleTransferBrandID = "style-transfer"

// BuildBrandPrompt synthesizes the brand-substitution instruction. The seven
// segments are ordered deliberately: generation models weight earlier
// instructions more, and the preservation directive is repeated at both ends
// on purpose. Do not reorder or deduplicate.
func BuildBrandPrompt(b brand.Profile, deepAnalysis bool) string {
	var sb strings.Builder

	// 1. Strict image preservation command.
	sb.WriteString("IMAGE TO IMAGE TRANSFORMATION: ")
	sb.WriteString("PRESERVE the exact same subject, person, pose, composition, and scene layout. ")
	sb.WriteString("DO NOT create a new image. DO NOT change the person's identity, position, or facial features. ")
	sb.WriteString("ONLY modify clothing, accessories, colors, and brand elements. ")

	// 2. Brand transformation instruction; deep analysis selects the enhanced
	// fragment when the brand carries one.
	if deepAnalysis && b.SoulPrompt != "" {
		sb.WriteString(b.SoulPrompt + " ")
	} else {
		sb.WriteString(b.BasePrompt + " ")
	}

	// 3. Specific style modifications.
	sb.WriteString("TRANSFORM ONLY: ")
	fmt.Fprintf(&sb, "clothing to %s branded items, ", b.Name)
	fmt.Fprintf(&sb, "accessories to %s products, ", b.Name)
	fmt.Fprintf(&sb, "colors to %s, ", strings.Join(b.Palette.Values(), ", "))
	fmt.Fprintf(&sb, "styling to %s aesthetic. ", strings.Join(b.Aesthetics, ", "))

	// 4. Brand exclusivity.
	sb.WriteString("BRAND EXCLUSIVITY: ")
	fmt.Fprintf(&sb, "Show ONLY %s branding. ", b.Name)
	sb.WriteString("Remove all other brand logos, labels, or identifiers. ")
	fmt.Fprintf(&sb, "Replace competing brands with %s equivalents. ", b.Name)

	// 5. Negative prompting, when the brand defines one.
	if b.NegativePrompt != "" {
		fmt.Fprintf(&sb, "AVOID: %s. ", b.NegativePrompt)
	}

	// 6. Quality and style specification.
	sb.WriteString("PHOTOGRAPHY STYLE: Professional commercial photography, ")
	sb.WriteString("high resolution, perfect lighting, brand campaign quality. ")
	sb.WriteString("Maintain original image's lighting direction and mood. ")

	// 7. Final preservation reminder.
	sb.WriteString("CRITICAL: Keep the same person, same pose, same background layout. ")
	fmt.Fprintf(&sb, "Only change what they're wearing and holding to %s products.", b.Name)

	return sb.String()
}

// BuildStyleTransferPrompt synthesizes the style-transfer instruction from a
// photographic descriptor. It deliberately contains no brand vocabulary: the
// product's own identity is preserved and only the photographic treatment of
// the reference is transplanted.
func BuildStyleTransferPrompt(d vision.StyleDescriptor) string {
	var sb strings.Builder
	sb.WriteString("PRODUCT IDENTITY PRESERVATION: ")
	sb.WriteString("Keep the product's design, logos, text, colors, and shape exactly as they are. ")
	sb.WriteString("DO NOT redesign, rebrand, or regenerate the product itself. ")
	sb.WriteString("STYLE TRANSFER: Recreate the photograph using only the photographic treatment described here. ")
	sb.WriteString(vision.StylePrompt(d))
	sb.WriteString(" Apply this lighting, background, composition, and mood around the product without altering the product. ")
	sb.WriteString("PHOTOGRAPHY QUALITY: Professional commercial photography, high resolution, campaign quality. ")
	sb.WriteString("CRITICAL: The product must remain identical; only its environment and photographic treatment change.")
	return sb.String()
}
