package placeholder

import "math"

const (
	minPadding = 10.0
	maxPadding = 40.0

	minFontSize = 6.0
	maxFontSize = 24.0
)

// CalcPadding returns the default padding for an image: a tenth of the
// shorter side capped at 40. Images whose shorter side is under 100 get no
// padding at all rather than a proportionally tiny one.
func CalcPadding(size Size) float64 {
	minLength := math.Min(size.Width, size.Height)

	padding := math.Min(minLength/10, maxPadding)
	if padding >= minPadding {
		return padding
	}
	return 0
}

// CalcFontSize returns the default caption size for a text area of the
// given width: width/5 capped at 24, falling back to width/3 for narrow
// areas. It reports false when neither reaches 6pt.
func CalcFontSize(area Size) (float64, bool) {
	if size := math.Min(area.Width/5, maxFontSize); size >= minFontSize {
		return size, true
	}
	if size := math.Min(area.Width/3, maxFontSize); size >= minFontSize {
		return size, true
	}
	return 0, false
}

// midGray is the brightness threshold for choosing the outline colour.
var midGray = Hex(0x7F7F7F)

// OutlineColor returns the translucent stroke used for the outline on bg:
// dark on light backgrounds, light on dark ones.
func OutlineColor(bg Color) Color {
	if bg.Luma() > midGray.Luma() {
		return White(0, 0.2)
	}
	return White(1, 0.3)
}
