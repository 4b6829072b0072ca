// Package placeholder synthesizes placeholder raster images: a themed
// background, an optional outline with a diagonal cross, and a centered,
// word-wrapped caption.
//
// Rendering never fails. Degenerate requests (empty sizes, paddings that
// swallow the text area, fonts too small to read) produce a valid image
// with less or no content.
package placeholder

import (
	"image"

	"github.com/user/imageplaceholder/pkg/adapters/ggrenderer"
	"github.com/user/imageplaceholder/pkg/adapters/logger"
	"github.com/user/imageplaceholder/pkg/ports"
)

const (
	outlineWidth  = 2.0
	diagonalWidth = 1.0
)

// Renderer draws placeholders onto canvases supplied by a backend.
// It holds no per-render state and is safe for concurrent use when the
// backend is.
type Renderer struct {
	backend ports.Renderer
	logger  ports.Logger
}

// New creates a Renderer drawing through backend.
func New(backend ports.Renderer, logger ports.Logger) *Renderer {
	return &Renderer{
		backend: backend,
		logger:  logger.WithComponent("placeholder"),
	}
}

var defaultRenderer = New(ggrenderer.New(), logger.NewNoop())

// Render draws req with the gg backend.
func Render(req Request) image.Image {
	return defaultRenderer.Render(req)
}

// Render draws req and returns the finished image.
func (r *Renderer) Render(req Request) image.Image {
	img, _ := r.RenderWithLayout(req)
	return img
}

// RenderWithLayout draws req and also returns the resolved layout.
func (r *Renderer) RenderWithLayout(req Request) (image.Image, Layout) {
	theme := req.theme()
	size := req.Size
	layout := Layout{Size: size, Outline: req.Outline}

	width, height := size.Pixels()
	if width == 0 || height == 0 {
		r.logger.Debug("Empty image %s, nothing to draw", size)
		return image.NewRGBA(image.Rect(0, 0, width, height)), layout
	}
	r.logger.Debug("Rendering %s placeholder %s", theme.Name, size)

	canvas := r.backend.CreateCanvas(width, height)
	canvas.SetAlpha(req.alpha())
	canvas.DrawRect(0, 0, size.Width, size.Height, theme.Background)

	if req.Outline {
		ink := OutlineColor(theme.Background)
		layout.OutlineInk = ink
		canvas.DrawRectStroke(0, 0, size.Width, size.Height, ink, outlineWidth)
		canvas.DrawLine(0, 0, size.Width, size.Height, ink, diagonalWidth)
		canvas.DrawLine(0, size.Height, size.Width, 0, ink, diagonalWidth)
	}

	layout.Padding = req.padding()
	layout.TextArea = size.Inset(layout.Padding)
	r.logger.Debug("Padding %.1f, text area %.1fx%.1f", layout.Padding, layout.TextArea.Width, layout.TextArea.Height)

	if layout.TextArea.Empty() {
		r.logger.Debug("Text area is empty, skipping text")
		return canvas.ToImage(), layout
	}

	font, ok := req.font(layout.TextArea)
	if !ok {
		r.logger.Debug("No readable font size for text area, skipping text")
		return canvas.ToImage(), layout
	}

	style := ports.TextStyle{
		FontSize: font.Size,
		FontPath: font.Path,
		Color:    theme.Foreground,
	}
	layout.Caption = req.text()(size)
	block := layoutText(canvas, layout.Caption, layout.TextArea, style)
	if len(block.lines) == 0 {
		return canvas.ToImage(), layout
	}

	// The block is centered on the whole image, not on the text area.
	bounds := Rect{
		X:      (size.Width - block.width) / 2,
		Y:      (size.Height - block.height()) / 2,
		Width:  block.width,
		Height: block.height(),
	}
	for i, line := range block.lines {
		x := lineX(req.Alignment, bounds.X, bounds.Width, block.widths[i])
		y := bounds.Y + float64(i)*block.lineHeight
		canvas.DrawText(line, x, y, style)
	}

	layout.Font = font
	layout.Lines = block.lines
	layout.LineHeight = block.lineHeight
	layout.TextBounds = bounds
	r.logger.Debug("Caption drawn in %d lines at %.1fpt", len(block.lines), font.Size)

	return canvas.ToImage(), layout
}
