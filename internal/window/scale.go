package window

import "math"

// ToPixel maps a value in [0, extent] onto a track of the given pixel width.
func ToPixel(value, extent int, width float64) float64 {
	if extent <= 0 {
		return 0
	}
	return float64(value) / float64(extent) * width
}

// FromPixel maps a pixel offset on a track of the given width back to the
// nearest value in [0, extent]. Offsets outside the track are clamped.
func FromPixel(x, width float64, extent int) int {
	if width <= 0 || extent <= 0 || math.IsNaN(x) {
		return 0
	}
	x = math.Max(0, math.Min(width, x))
	return int(math.Round(x / width * float64(extent)))
}
