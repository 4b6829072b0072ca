package mocks

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/user/imageplaceholder/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
// Canvases it creates are recorded in Canvases.
type Renderer struct {
	mu sync.Mutex

	CreateCanvasFunc func(width, height int) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height)
	}
	c := NewCanvas(width, height)
	m.mu.Lock()
	m.Canvases = append(m.Canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Call is a single recorded canvas operation.
type Call struct {
	Op    string // "alpha", "rect", "stroke", "line", "image", "text"
	X, Y  float64
	W, H  float64
	Color color.Color
	Width float64 // stroke width, or alpha for "alpha"
	Text  string
	Style ports.TextStyle
}

// Canvas is a mock implementation of ports.Canvas that records draw calls.
// Text metrics are fixed: every rune is CharWidth wide and lines are
// LineSpacing apart. "line" calls store the end point in W, H.
type Canvas struct {
	width  int
	height int

	CharWidth   float64
	LineSpacing float64
	Calls       []Call
}

// NewCanvas creates a recording canvas. Unless overridden, a rune is half
// the font size wide and lines are one font size apart.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (m *Canvas) charWidth(style ports.TextStyle) float64 {
	if m.CharWidth > 0 {
		return m.CharWidth
	}
	return style.FontSize / 2
}

func (m *Canvas) SetAlpha(alpha float64) {
	m.Calls = append(m.Calls, Call{Op: "alpha", Width: alpha})
}

func (m *Canvas) DrawRect(x, y, w, h float64, c color.Color) {
	m.Calls = append(m.Calls, Call{Op: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawRectStroke(x, y, w, h float64, c color.Color, strokeWidth float64) {
	m.Calls = append(m.Calls, Call{Op: "stroke", X: x, Y: y, W: w, H: h, Color: c, Width: strokeWidth})
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	m.Calls = append(m.Calls, Call{Op: "line", X: x1, Y: y1, W: x2, H: y2, Color: c, Width: width})
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	m.Calls = append(m.Calls, Call{Op: "image", X: float64(x), Y: float64(y), W: float64(b.Dx()), H: float64(b.Dy())})
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	return float64(len([]rune(text))) * m.charWidth(style), m.LineHeight(style)
}

// WrapText greedily packs space-separated words, like gg's word wrap.
func (m *Canvas) WrapText(text string, width float64, style ports.TextStyle) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var cur string
		for _, word := range strings.Fields(para) {
			next := word
			if cur != "" {
				next = cur + " " + word
			}
			if w, _ := m.MeasureText(next, style); w > width && cur != "" {
				lines = append(lines, cur)
				cur = word
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}

func (m *Canvas) LineHeight(style ports.TextStyle) float64 {
	if m.LineSpacing > 0 {
		return m.LineSpacing
	}
	return style.FontSize
}

func (m *Canvas) DrawText(text string, x, y float64, style ports.TextStyle) {
	m.Calls = append(m.Calls, Call{Op: "text", X: x, Y: y, Text: text, Style: style, Color: style.Color})
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

// CallsOf returns the recorded calls with the given op.
func (m *Canvas) CallsOf(op string) []Call {
	var out []Call
	for _, c := range m.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

var _ ports.Canvas = (*Canvas)(nil)
