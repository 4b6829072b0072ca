package summarizer

import "time"

// Summary contains all data collected while rendering a batch.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Where images went
	Output OutputInfo

	// Batch settings
	Settings Settings

	// One entry per rendered image, in job order
	Images []ImageInfo

	// Contact sheet, nil when none was composed
	Sheet *SheetInfo
}

// OutputInfo describes the output destination.
type OutputInfo struct {
	Dir    string
	Format string // "png" or "jpeg"
	DryRun bool
}

// Settings contains the batch configuration.
type Settings struct {
	Workers int
	Columns int // Sheet columns, 0 when no sheet
	Seed    uint64
}

// ImageInfo describes one rendered placeholder.
type ImageInfo struct {
	Name     string
	Width    int
	Height   int
	Theme    string
	Outline  bool
	Padding  float64
	FontSize float64 // 0 when no caption was drawn
	Lines    int
	Path     string // Empty on dry runs
}

// SheetInfo describes the composed contact sheet.
type SheetInfo struct {
	Path   string
	Width  int
	Height int
	Cells  int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithOutput sets output information.
func (b *Builder) WithOutput(dir, format string, dryRun bool) *Builder {
	b.summary.Output = OutputInfo{
		Dir:    dir,
		Format: format,
		DryRun: dryRun,
	}
	return b
}

// WithSettings sets batch settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddImage appends an image entry.
func (b *Builder) AddImage(image ImageInfo) *Builder {
	b.summary.Images = append(b.summary.Images, image)
	return b
}

// WithSheet sets contact sheet information.
func (b *Builder) WithSheet(sheet SheetInfo) *Builder {
	b.summary.Sheet = &sheet
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}

// Pixels returns the total pixel count of all images.
func (s *Summary) Pixels() int64 {
	var total int64
	for _, img := range s.Images {
		total += int64(img.Width) * int64(img.Height)
	}
	return total
}

// Captioned returns how many images carry a caption.
func (s *Summary) Captioned() int {
	n := 0
	for _, img := range s.Images {
		if img.Lines > 0 {
			n++
		}
	}
	return n
}
