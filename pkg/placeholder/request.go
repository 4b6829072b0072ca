package placeholder

import (
	"fmt"
	"math"

	"github.com/user/imageplaceholder/pkg/ports"
)

// Size is an image or text-area extent in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Inset returns the size shrunk by d on each of the four sides.
func (s Size) Inset(d float64) Size {
	return Size{Width: s.Width - 2*d, Height: s.Height - 2*d}
}

// Empty reports whether the size encloses no area.
func (s Size) Empty() bool {
	return !(s.Width > 0 && s.Height > 0)
}

// Pixels returns the integer buffer dimensions for the size.
// Negative and non-finite extents yield 0.
func (s Size) Pixels() (width, height int) {
	return truncate(s.Width), truncate(s.Height)
}

func truncate(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return int(v)
}

// String formats the size as WIDTHxHEIGHT with truncated dimensions.
func (s Size) String() string {
	w, h := s.Pixels()
	return fmt.Sprintf("%dx%d", w, h)
}

// TextFunc produces the caption for an image of the given size.
type TextFunc func(size Size) string

// DefaultText captions an image with its truncated dimensions, e.g. "80x80".
func DefaultText(size Size) string {
	return size.String()
}

// Font selects the caption typeface and point size.
// A zero Size keeps the face but lets the renderer compute the size.
type Font struct {
	Size float64
	Path string // TrueType file; empty selects the built-in Go Regular face
}

// SystemFont returns the built-in face at the given point size.
func SystemFont(size float64) Font {
	return Font{Size: size}
}

// Request is the full parameter set for one render.
// Nil pointer fields and zero values select the documented defaults.
type Request struct {
	// Size of the output image. Required.
	Size Size

	// Theme defaults to Gray.
	Theme *Theme

	// Padding between the image edge and the text area.
	// Defaults to CalcPadding(Size).
	Padding *float64

	// Alpha is the opacity (0-1) every draw is composited at. Defaults to 1.
	Alpha *float64

	// Outline draws a border and a diagonal "X".
	Outline bool

	// Alignment of wrapped lines inside the text block. Defaults to center.
	Alignment ports.TextAlign

	// Font defaults to the built-in face sized by CalcFontSize.
	Font *Font

	// Text defaults to DefaultText.
	Text TextFunc
}

// Float returns a pointer to v, for the optional Request fields.
func Float(v float64) *float64 {
	return &v
}

func (r Request) theme() Theme {
	if r.Theme != nil {
		return *r.Theme
	}
	return Gray
}

func (r Request) alpha() float64 {
	if r.Alpha != nil {
		return *r.Alpha
	}
	return 1
}

func (r Request) padding() float64 {
	if r.Padding == nil {
		return CalcPadding(r.Size)
	}
	if math.IsNaN(*r.Padding) {
		return 0
	}
	return *r.Padding
}

func (r Request) text() TextFunc {
	if r.Text != nil {
		return r.Text
	}
	return DefaultText
}

// font resolves the caption font for the text area. It reports false when
// the area is too small for any readable size.
func (r Request) font(area Size) (Font, bool) {
	if r.Font != nil && r.Font.Size != 0 {
		return *r.Font, true
	}
	size, ok := CalcFontSize(area)
	if !ok {
		return Font{}, false
	}
	f := SystemFont(size)
	if r.Font != nil {
		f.Path = r.Font.Path
	}
	return f, true
}
