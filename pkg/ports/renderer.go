package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the raster backend used to synthesize placeholders.
type Renderer interface {
	// CreateCanvas creates a fully transparent drawing canvas with the specified dimensions.
	CreateCanvas(width, height int) Canvas

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Canvas is the drawing surface a placeholder is painted on.
// Coordinates are in pixels with the origin at the top-left corner.
type Canvas interface {
	// SetAlpha sets the opacity (0-1) every subsequent draw is composited at.
	SetAlpha(alpha float64)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h float64, c color.Color)

	// DrawRectStroke draws a rectangle outline centered on the rectangle edges.
	DrawRectStroke(x, y, w, h float64, c color.Color, strokeWidth float64)

	// DrawLine draws a line between two points.
	DrawLine(x1, y1, x2, y2 float64, c color.Color, width float64)

	// DrawImage draws an image with its top-left corner at the specified position.
	DrawImage(img image.Image, x, y int)

	// MeasureText returns the width and height of a single line of text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// WrapText splits text into lines no wider than width, breaking at spaces
	// and explicit newlines. A single word wider than width stays on its own line.
	WrapText(text string, width float64, style TextStyle) []string

	// LineHeight returns the distance between consecutive baselines.
	LineHeight(style TextStyle) float64

	// DrawText draws a single line of text with its top-left corner at the specified position.
	DrawText(text string, x, y float64, style TextStyle)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string // TrueType file; empty selects the built-in face
	Color    color.Color
}

// TextAlign specifies horizontal alignment of wrapped lines.
// The zero value centers lines.
type TextAlign int

const (
	AlignCenter TextAlign = iota
	AlignLeft
	AlignRight
)

// String returns the flag name of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseTextAlign parses a flag name into a TextAlign, defaulting to center.
func ParseTextAlign(s string) TextAlign {
	switch s {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// Ext returns the file extension used for the format.
func (f ImageFormat) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}
