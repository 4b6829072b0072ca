package pipeline

import (
	"image"

	"github.com/user/imageplaceholder/pkg/placeholder"
)

// =============================================================================
// Common Types
// =============================================================================

// Job is a single named placeholder to render.
type Job struct {
	Name    string // Output name without extension, e.g. "gray-80x80"
	Request placeholder.Request
}

// Rectangle represents a rectangular area in pixels.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput contains the jobs to render.
type RenderInput struct {
	Jobs []Job
}

// RenderResult contains one entry per input job, in input order.
type RenderResult struct {
	Items []Rendered
}

// Rendered is a finished placeholder with the layout it was drawn with.
type Rendered struct {
	Name   string
	Theme  string
	Image  image.Image
	Layout placeholder.Layout
}

// =============================================================================
// Sheet Stage Types
// =============================================================================

// SheetInput contains parameters for composing a contact sheet.
type SheetInput struct {
	Items      []Rendered
	Columns    int               // Number of columns (default: 3)
	Gap        int               // Gap between cells (default: 10)
	Margin     int               // Margin around the grid (default: 10)
	Background placeholder.Color // Sheet background (default: white)
}

// DefaultSheetInput returns SheetInput with default values.
func DefaultSheetInput() SheetInput {
	return SheetInput{
		Columns:    3,
		Gap:        10,
		Margin:     10,
		Background: placeholder.Hex(0xFFFFFF),
	}
}

// SheetLayout is the computed grid geometry of a sheet.
type SheetLayout struct {
	Width  int
	Height int
	Cells  []Rectangle // One per item, in item order
}

// SheetResult contains the composed sheet.
type SheetResult struct {
	Image  image.Image
	Layout SheetLayout
}
