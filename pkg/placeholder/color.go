package placeholder

import (
	"image/color"
	"math"
)

// Color is a non-premultiplied RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Hex builds an opaque colour from a 24-bit 0xRRGGBB value.
func Hex(hex uint32) Color {
	const mask = 0xFF
	return Color{
		R: float64((hex>>16)&mask) / 255,
		G: float64((hex>>8)&mask) / 255,
		B: float64(hex&mask) / 255,
		A: 1,
	}
}

// RGB builds an opaque colour from channel values.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA builds a colour from channel values.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// White builds a gray colour of the given brightness and alpha.
func White(w, a float64) Color {
	return Color{R: w, G: w, B: w, A: a}
}

// YUV converts the colour to YUV (BT.709 luma weights).
// Only y takes part in rendering decisions.
func (c Color) YUV() (y, u, v float64) {
	y = 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	u = -0.09991*c.R - 0.33609*c.G + 0.436*c.B
	v = 0.615*c.R - 0.55861*c.G - 0.05639*c.B
	return y, u, v
}

// Luma returns the Y channel of the colour's YUV conversion.
func (c Color) Luma() float64 {
	y, _, _ := c.YUV()
	return y
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}.RGBA()
}

// channel8 maps a [0, 1] channel to 8 bits, clamping out-of-range input.
func channel8(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}

var _ color.Color = Color{}
