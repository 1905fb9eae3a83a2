package imageref

// Dimension limits accepted by the FLUX family of generation models. Sides
// must be multiples of 16 inside [MinDimension, MaxDimension].
const (
	MaxDimension  = 1024
	MinDimension  = 64
	dimensionStep = 16
)

// NormalizeDimensions maps arbitrary input dimensions to a provider-compatible
// pair: the longer side is clamped to MaxDimension with the aspect ratio
// preserved, then both sides are rounded to the nearest multiple of 16 and
// clamped into [MinDimension, MaxDimension]. Clamping runs after rounding so
// rounding can never push a side back out of bounds. The function is
// deterministic and idempotent on an already-normalized pair.
func NormalizeDimensions(width, height int) (int, int) {
	if width <= 0 {
		width = MaxDimension
	}
	if height <= 0 {
		height = MaxDimension
	}

	scaledWidth := width
	scaledHeight := height
	if width > MaxDimension || height > MaxDimension {
		if width >= height {
			scaledWidth = MaxDimension
			scaledHeight = roundRatio(MaxDimension * height, width)
		} else {
			scaledHeight = MaxDimension
			scaledWidth = roundRatio(MaxDimension * width, height)
		}
	}

	return clampDimension(roundToStep(scaledWidth)), clampDimension(roundToStep(scaledHeight))
}

func roundToStep(n int) int {
	return (n + dimensionStep/2) / dimensionStep * dimensionStep
}

func roundRatio(numerator, denominator int) int {
	return (numerator + denominator/2) / denominator
}

func clampDimension(n int) int {
	if n < MinDimension {
		return MinDimension
	}
	if n > MaxDimension {
		return MaxDimension
	}
	return n
}
