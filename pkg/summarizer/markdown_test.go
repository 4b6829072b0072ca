package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/imageplaceholder/pkg/mocks"
)

func sampleSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Output: OutputInfo{
			Dir:    "out",
			Format: "png",
		},
		Settings: Settings{
			Workers: 4,
			Columns: 3,
			Seed:    7,
		},
		Images: []ImageInfo{
			{Name: "gray-80x80", Width: 80, Height: 80, Theme: "gray", Padding: 0, FontSize: 16, Lines: 1, Path: "out/gray-80x80.png"},
			{Name: "lava-20x20", Width: 20, Height: 20, Theme: "lava", Outline: true, Padding: 0, FontSize: 6.67, Lines: 1, Path: "out/lava-20x20.png"},
			{Name: "tiny", Width: 10, Height: 10, Theme: "sky", Path: "out/tiny.png"},
		},
		Sheet: &SheetInfo{Path: "out/sheet.png", Width: 290, Height: 110, Cells: 3},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# ",
		"2024-01-15 10:30:00",
		"| gray-80x80 | 80x80 | gray |",
		"| lava-20x20 | 20x20 | lava |",
		"6.67pt",
		"16pt",
		"out/lava-20x20.png",
		"6.9 KP",
		"PNG",
		"290x110",
		"](out/sheet.png)",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_NoCaption(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	// The 10x10 image has no font: size and path columns
	for _, line := range strings.Split(result, "\n") {
		if strings.HasPrefix(line, "| tiny |") {
			if !strings.Contains(line, "| - | 0 |") {
				t.Errorf("expected dash font size and zero lines, got %q", line)
			}
			return
		}
	}
	t.Error("row for tiny image not found")
}

func TestMarkdownFormatter_Format_NoSheet(t *testing.T) {
	summary := sampleSummary()
	summary.Sheet = nil

	result := NewMarkdownFormatter().Format(summary)
	if strings.Contains(result, "sheet.png") {
		t.Error("expected no sheet section")
	}
}

func TestMarkdownFormatter_Format_Empty(t *testing.T) {
	result := NewMarkdownFormatter().Format(&Summary{})
	if !strings.HasPrefix(result, "# ") {
		t.Errorf("expected a title, got %q", result)
	}
	if strings.Contains(result, "| gray") {
		t.Error("expected no image rows")
	}
}

func TestFormatPixels(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 px"},
		{999, "999 px"},
		{6800, "6.8 KP"},
		{2_500_000, "2.50 MP"},
	}
	for _, tt := range tests {
		if got := formatPixels(tt.n); got != tt.want {
			t.Errorf("formatPixels(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{6.666, "6.67"},
		{12.5, "12.5"},
	}
	for _, tt := range tests {
		if got := formatPoints(tt.v); got != tt.want {
			t.Errorf("formatPoints(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(*Summary) string { return "# summary" }), fs)

	if err := w.Write("out/summary.md", NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, ok := fs.GetFile("out/summary.md")
	if !ok {
		t.Fatal("expected summary file to be written")
	}
	if string(data) != "# summary" {
		t.Errorf("unexpected contents %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(string, []byte) error { return errors.New("read-only") }
	w := NewWriter(NewMarkdownFormatter(), fs)

	if err := w.Write("summary.md", NewSummary()); err == nil {
		t.Error("expected write error")
	}
}
