package resize

import "math"

// ComputeScale returns the factor that fits width x height inside
// maxWidth x maxHeight. It never enlarges: images already in bounds get 1.
func ComputeScale(width, height, maxWidth, maxHeight int) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	if width <= maxWidth && height <= maxHeight {
		return 1
	}

	fw := float64(maxWidth) / float64(width)
	fh := float64(maxHeight) / float64(height)

	scale := fh
	if width > height {
		scale = fw
	}
	// non-square boxes: the other side may still overflow
	return math.Min(scale, math.Min(fw, fh))
}

// TargetSize applies scale to both sides, flooring each to at least 1px
func TargetSize(width, height int, scale float64) (int, int) {
	if scale >= 1 {
		return width, height
	}
	return scaleDim(width, scale), scaleDim(height, scale)
}

func scaleDim(dim int, scale float64) int {
	n := int(math.Floor(float64(dim) * scale))
	if n < 1 {
		return 1
	}
	return n
}
