package sheet

import (
	"github.com/user/imageplaceholder/pkg/pipeline"
)

// ComputeGrid lays items out in a grid of uniform cells. The cell is as
// large as the largest item; each item is centered in its cell.
// This is exposed as a standalone function for testing and reuse.
func ComputeGrid(input pipeline.SheetInput) pipeline.SheetLayout {
	n := len(input.Items)
	columns := input.Columns
	if columns <= 0 {
		columns = 1
	}
	if columns > n && n > 0 {
		columns = n
	}
	gap := max(input.Gap, 0)
	margin := max(input.Margin, 0)

	if n == 0 {
		return pipeline.SheetLayout{Width: margin * 2, Height: margin * 2, Cells: []pipeline.Rectangle{}}
	}

	cellW, cellH := 0, 0
	for _, item := range input.Items {
		if item.Image == nil {
			continue
		}
		b := item.Image.Bounds()
		cellW = max(cellW, b.Dx())
		cellH = max(cellH, b.Dy())
	}

	rows := (n + columns - 1) / columns
	layout := pipeline.SheetLayout{
		Width:  margin*2 + columns*cellW + (columns-1)*gap,
		Height: margin*2 + rows*cellH + (rows-1)*gap,
		Cells:  make([]pipeline.Rectangle, n),
	}

	for i, item := range input.Items {
		col := i % columns
		row := i / columns
		w, h := 0, 0
		if item.Image != nil {
			w, h = item.Image.Bounds().Dx(), item.Image.Bounds().Dy()
		}
		layout.Cells[i] = pipeline.Rectangle{
			X:      margin + col*(cellW+gap) + (cellW-w)/2,
			Y:      margin + row*(cellH+gap) + (cellH-h)/2,
			Width:  w,
			Height: h,
		}
	}
	return layout
}
