// Package orchestrator coordinates the batch rendering stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/user/imageplaceholder/pkg/pipeline"
	"github.com/user/imageplaceholder/pkg/placeholder"
	"github.com/user/imageplaceholder/pkg/ports"
	"github.com/user/imageplaceholder/pkg/summarizer"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Output
	OutputDir string // Only used for the summary
	Format    string // "png" or "jpeg", only used for the summary

	// Rendering
	Workers int
	Seed    uint64 // Recorded in the summary when non-zero

	// Contact sheet
	Sheet           bool
	SheetName       string
	Columns         int
	Gap             int
	Margin          int
	SheetBackground placeholder.Color
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	sheet := pipeline.DefaultSheetInput()
	return Config{
		Format:          "png",
		SheetName:       "sheet",
		Columns:         sheet.Columns,
		Gap:             sheet.Gap,
		Margin:          sheet.Margin,
		SheetBackground: sheet.Background,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	sheetStage  pipeline.Stage[pipeline.SheetInput, pipeline.SheetResult]
	sink        ports.ImageSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	sheetStage pipeline.Stage[pipeline.SheetInput, pipeline.SheetResult],
	sink ports.ImageSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		renderStage: renderStage,
		sheetStage:  sheetStage,
		sink:        sink,
		logger:      logger,
	}
}

// Run renders jobs, optionally composes a contact sheet, and hands every
// image to the sink.
func (o *Orchestrator) Run(ctx context.Context, jobs []pipeline.Job, config Config) (RunResult, error) {
	if err := validateJobs(jobs, config); err != nil {
		return RunResult{}, err
	}

	// 1. Render
	rendered, err := o.renderStage.Execute(ctx, pipeline.RenderInput{Jobs: jobs})
	if err != nil {
		o.logger.Error("Failed to render placeholders: %s", err)
		return RunResult{}, fmt.Errorf("render stage: %w", err)
	}

	result := RunResult{DryRun: !o.sink.Enabled()}

	// 2. Save images
	for _, item := range rendered.Items {
		path, err := o.save(item.Name, item)
		if err != nil {
			return RunResult{}, err
		}
		b := item.Image.Bounds()
		result.Images = append(result.Images, ImageResult{
			Rendered: item,
			Path:     path,
			Width:    b.Dx(),
			Height:   b.Dy(),
		})
	}

	// 3. Contact sheet (optional)
	if config.Sheet && len(rendered.Items) > 0 {
		sheet, err := o.sheetStage.Execute(ctx, o.buildSheetInput(config, rendered))
		if err != nil {
			o.logger.Error("Failed to compose sheet: %s", err)
			return RunResult{}, fmt.Errorf("sheet stage: %w", err)
		}
		path, err := o.save(config.SheetName, pipeline.Rendered{Name: config.SheetName, Image: sheet.Image})
		if err != nil {
			return RunResult{}, err
		}
		result.Sheet = &SheetResult{
			Path:   path,
			Width:  sheet.Layout.Width,
			Height: sheet.Layout.Height,
			Cells:  len(sheet.Layout.Cells),
		}
	}

	if result.DryRun {
		o.logger.Info("Dry run, %d images not written", len(result.Images))
	} else {
		o.logger.Info("Generated %d images", len(result.Images))
	}

	result.Summary = buildSummary(config, result)
	return result, nil
}

func (o *Orchestrator) save(name string, item pipeline.Rendered) (string, error) {
	if !o.sink.Enabled() {
		return "", nil
	}
	path, err := o.sink.SaveImage(name, item.Image)
	if err != nil {
		o.logger.Error("Failed to save %s: %s", name, err)
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	o.logger.Info("Saved %s", path)
	return path, nil
}

func (o *Orchestrator) buildSheetInput(config Config, rendered pipeline.RenderResult) pipeline.SheetInput {
	return pipeline.SheetInput{
		Items:      rendered.Items,
		Columns:    config.Columns,
		Gap:        config.Gap,
		Margin:     config.Margin,
		Background: config.SheetBackground,
	}
}

// validateJobs rejects names that would overwrite each other in the sink.
func validateJobs(jobs []pipeline.Job, config Config) error {
	seen := make(map[string]bool, len(jobs)+1)
	if config.Sheet {
		seen[config.SheetName] = true
	}
	for i, job := range jobs {
		if job.Name == "" {
			return fmt.Errorf("job %d: name is required", i)
		}
		if seen[job.Name] {
			return fmt.Errorf("job %d: duplicate name %q", i, job.Name)
		}
		seen[job.Name] = true
	}
	return nil
}

func buildSummary(config Config, result RunResult) *summarizer.Summary {
	b := summarizer.NewBuilder().
		WithOutput(config.OutputDir, config.Format, result.DryRun).
		WithSettings(summarizer.Settings{
			Workers: config.Workers,
			Columns: conditionalInt(config.Sheet, config.Columns, 0),
			Seed:    config.Seed,
		})

	for _, img := range result.Images {
		layout := img.Layout
		b.AddImage(summarizer.ImageInfo{
			Name:     img.Name,
			Width:    img.Width,
			Height:   img.Height,
			Theme:    img.Theme,
			Outline:  layout.Outline,
			Padding:  layout.Padding,
			FontSize: layout.Font.Size,
			Lines:    len(layout.Lines),
			Path:     img.Path,
		})
	}
	if result.Sheet != nil {
		b.WithSheet(summarizer.SheetInfo{
			Path:   result.Sheet.Path,
			Width:  result.Sheet.Width,
			Height: result.Sheet.Height,
			Cells:  result.Sheet.Cells,
		})
	}
	return b.Build()
}

func conditionalInt(condition bool, trueVal, falseVal int) int {
	if condition {
		return trueVal
	}
	return falseVal
}

// RunResult contains the results of a batch run.
type RunResult struct {
	Images  []ImageResult
	Sheet   *SheetResult
	DryRun  bool
	Summary *summarizer.Summary
}

// ImageResult is a rendered placeholder and where it was saved.
type ImageResult struct {
	pipeline.Rendered
	Path   string // Empty on dry runs
	Width  int
	Height int
}

// SheetResult describes the saved contact sheet.
type SheetResult struct {
	Path   string
	Width  int
	Height int
	Cells  int
}
