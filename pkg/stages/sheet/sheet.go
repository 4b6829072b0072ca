// Package sheet implements the contact sheet composition stage.
package sheet

import (
	"context"
	"errors"
	"image"

	"github.com/user/imageplaceholder/pkg/pipeline"
	"github.com/user/imageplaceholder/pkg/ports"
)

// ErrNoItems is returned when there is nothing to put on a sheet.
var ErrNoItems = errors.New("sheet: no images to compose")

// Stage composes rendered placeholders into a single grid image.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new sheet stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("sheet"),
	}
}

// Execute computes the grid and draws every item into it.
func (s *Stage) Execute(ctx context.Context, input pipeline.SheetInput) (pipeline.SheetResult, error) {
	if len(input.Items) == 0 {
		return pipeline.SheetResult{}, ErrNoItems
	}
	if err := ctx.Err(); err != nil {
		return pipeline.SheetResult{}, err
	}

	layout := ComputeGrid(input)
	columns := min(max(input.Columns, 1), len(input.Items))
	s.logger.Debug("Composing sheet: %d cells, %d columns, %dx%d", len(layout.Cells), columns, layout.Width, layout.Height)

	canvas := s.renderer.CreateCanvas(layout.Width, layout.Height)
	canvas.DrawRect(0, 0, float64(layout.Width), float64(layout.Height), input.Background)

	for i, item := range input.Items {
		if item.Image == nil || item.Image.Bounds().Empty() {
			continue
		}
		cell := layout.Cells[i]
		canvas.DrawImage(originImage(item.Image), cell.X, cell.Y)
	}

	return pipeline.SheetResult{Image: canvas.ToImage(), Layout: layout}, nil
}

// originImage returns img with bounds starting at (0,0); gg.DrawImage
// expects a zero origin.
func originImage(img image.Image) image.Image {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}
