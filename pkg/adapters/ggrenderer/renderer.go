// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"sync"

	"github.com/fogleman/gg"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/imageplaceholder/pkg/ports"
)

// fontCacheSize bounds how many parsed font files are kept in memory.
const fontCacheSize = 16

var (
	builtinOnce sync.Once
	builtinFont *opentype.Font
	builtinErr  error

	fontCache = newFontCache()
)

func newFontCache() *lru.Cache[string, *opentype.Font] {
	c, err := lru.New[string, *opentype.Font](fontCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// builtinFace returns a face of the embedded Go Regular font at the given size.
// The parsed font is shared; faces are not.
func builtinFace(size float64) (font.Face, error) {
	builtinOnce.Do(func() {
		builtinFont, builtinErr = opentype.Parse(goregular.TTF)
	})
	if builtinErr != nil {
		return nil, fmt.Errorf("parse built-in font: %w", builtinErr)
	}
	return newFace(builtinFont, size)
}

// loadFont parses the TrueType or OpenType file at path, reusing fonts
// parsed earlier by any canvas.
func loadFont(path string) (*opentype.Font, error) {
	if f, ok := fontCache.Get(path); ok {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	fontCache.Add(path, f)
	return f, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new transparent drawing canvas.
func (r *Renderer) CreateCanvas(width, height int) ports.Canvas {
	return &Canvas{
		dc:    gg.NewContext(width, height),
		alpha: 1,
		faces: make(map[faceKey]font.Face),
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

type faceKey struct {
	path string
	size float64
}

// Canvas implements ports.Canvas using gg.Context.
// A Canvas is owned by a single render and is not safe for concurrent use.
type Canvas struct {
	dc    *gg.Context
	alpha float64
	faces map[faceKey]font.Face
}

// SetAlpha sets the opacity applied to every subsequent draw.
func (c *Canvas) SetAlpha(alpha float64) {
	switch {
	case math.IsNaN(alpha) || alpha > 1:
		alpha = 1
	case alpha < 0:
		alpha = 0
	}
	c.alpha = alpha
}

// tint scales the alpha of col by the canvas alpha.
func (c *Canvas) tint(col color.Color) color.Color {
	if col == nil {
		col = color.Black
	}
	if c.alpha >= 1 {
		return col
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * c.alpha))
	return n
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(c.tint(col))
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// DrawRectStroke draws a rectangle outline.
func (c *Canvas) DrawRectStroke(x, y, w, h float64, col color.Color, strokeWidth float64) {
	c.dc.SetColor(c.tint(col))
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col color.Color, width float64) {
	c.dc.SetColor(c.tint(col))
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	if c.alpha >= 1 {
		c.dc.DrawImage(img, x, y)
		return
	}
	dst, ok := c.dc.Image().(*image.RGBA)
	if !ok {
		c.dc.DrawImage(img, x, y)
		return
	}
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(255 * c.alpha))})
	draw.DrawMask(dst, r, img, b.Min, mask, image.Point{}, draw.Over)
}

// face resolves the font face for style. A face that fails to load from
// FontPath falls back to the built-in font.
func (c *Canvas) face(style ports.TextStyle) font.Face {
	key := faceKey{path: style.FontPath, size: style.FontSize}
	if f, ok := c.faces[key]; ok {
		return f
	}

	var f font.Face
	if style.FontPath != "" {
		if parsed, err := loadFont(style.FontPath); err == nil {
			if loaded, err := newFace(parsed, style.FontSize); err == nil {
				f = loaded
			}
		}
	}
	if f == nil {
		builtin, err := builtinFace(style.FontSize)
		if err != nil {
			return nil
		}
		f = builtin
	}
	c.faces[key] = f
	return f
}

// applyStyle selects the face for style. It reports false when no face is available.
func (c *Canvas) applyStyle(style ports.TextStyle) (font.Face, bool) {
	if style.FontSize <= 0 {
		return nil, false
	}
	f := c.face(style)
	if f == nil {
		return nil, false
	}
	c.dc.SetFontFace(f)
	return f, true
}

// MeasureText returns the width and height of a single line of text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	f, ok := c.applyStyle(style)
	if !ok {
		return 0, 0
	}
	width = float64(font.MeasureString(f, text)) / 64
	return width, c.LineHeight(style)
}

// WrapText splits text into lines that fit width using gg's word wrapping.
func (c *Canvas) WrapText(text string, width float64, style ports.TextStyle) []string {
	if _, ok := c.applyStyle(style); !ok {
		return nil
	}
	return c.dc.WordWrap(text, width)
}

// LineHeight returns the distance between consecutive baselines.
func (c *Canvas) LineHeight(style ports.TextStyle) float64 {
	f, ok := c.applyStyle(style)
	if !ok {
		return 0
	}
	return float64(f.Metrics().Height) / 64
}

// DrawText draws a single line of text whose top-left corner is at (x, y).
func (c *Canvas) DrawText(text string, x, y float64, style ports.TextStyle) {
	f, ok := c.applyStyle(style)
	if !ok {
		return
	}
	ascent := float64(f.Metrics().Ascent) / 64
	c.dc.SetColor(c.tint(style.Color))
	c.dc.DrawString(text, x, y+ascent)
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
