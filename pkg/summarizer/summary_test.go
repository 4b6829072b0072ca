package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
	if summary.Sheet != nil {
		t.Error("expected no sheet by default")
	}
}

func TestBuilder_WithOutput(t *testing.T) {
	summary := NewBuilder().
		WithOutput("out", "png", true).
		Build()

	if summary.Output.Dir != "out" {
		t.Errorf("expected dir 'out', got '%s'", summary.Output.Dir)
	}
	if summary.Output.Format != "png" {
		t.Errorf("expected format 'png', got '%s'", summary.Output.Format)
	}
	if !summary.Output.DryRun {
		t.Error("expected DryRun to be true")
	}
}

func TestBuilder_AddImage(t *testing.T) {
	summary := NewBuilder().
		AddImage(ImageInfo{Name: "a", Width: 10, Height: 20}).
		AddImage(ImageInfo{Name: "b", Width: 30, Height: 40, Lines: 2}).
		Build()

	if len(summary.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(summary.Images))
	}
	if summary.Images[0].Name != "a" || summary.Images[1].Name != "b" {
		t.Errorf("images out of order: %+v", summary.Images)
	}
	if got := summary.Pixels(); got != 10*20+30*40 {
		t.Errorf("expected %d pixels, got %d", 10*20+30*40, got)
	}
	if got := summary.Captioned(); got != 1 {
		t.Errorf("expected 1 captioned image, got %d", got)
	}
}

func TestBuilder_WithSettingsAndSheet(t *testing.T) {
	summary := NewBuilder().
		WithSettings(Settings{Workers: 4, Columns: 3, Seed: 42}).
		WithSheet(SheetInfo{Path: "out/sheet.png", Width: 500, Height: 300, Cells: 12}).
		Build()

	if summary.Settings.Workers != 4 || summary.Settings.Columns != 3 || summary.Settings.Seed != 42 {
		t.Errorf("unexpected settings %+v", summary.Settings)
	}
	if summary.Sheet == nil || summary.Sheet.Cells != 12 {
		t.Errorf("unexpected sheet %+v", summary.Sheet)
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return "ok" })
	if got := f.Format(NewSummary()); got != "ok" {
		t.Errorf("expected 'ok', got %q", got)
	}
}
