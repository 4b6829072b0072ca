package orchestrator_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/imageplaceholder/pkg/adapters/filesink"
	"github.com/user/imageplaceholder/pkg/adapters/ggrenderer"
	"github.com/user/imageplaceholder/pkg/adapters/logger"
	"github.com/user/imageplaceholder/pkg/adapters/osfilesystem"
	"github.com/user/imageplaceholder/pkg/gallery"
	"github.com/user/imageplaceholder/pkg/orchestrator"
	"github.com/user/imageplaceholder/pkg/placeholder"
	"github.com/user/imageplaceholder/pkg/ports"
	"github.com/user/imageplaceholder/pkg/stages/render"
	"github.com/user/imageplaceholder/pkg/stages/sheet"
	"github.com/user/imageplaceholder/pkg/summarizer"
)

// TestGalleryToDisk runs the demo gallery through the real backend and
// filesystem and decodes what was written.
func TestGalleryToDisk(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping disk test in short mode")
	}

	dir := t.TempDir()
	fs := osfilesystem.New()
	backend := ggrenderer.New()
	log := logger.NewNoop()

	renderStage := render.NewStage(placeholder.New(backend, log), log, 4)
	sheetStage := sheet.NewStage(backend, log)
	sink := filesink.New(dir, ports.FormatPNG, fs, backend)
	orch := orchestrator.New(renderStage, sheetStage, sink, log)

	cfg := gallery.NewConfigBuilder().WithSeed(2024).WithSheet(4).Build()
	jobs := cfg.Jobs()

	result, err := orch.Run(context.Background(), jobs, cfg.ToOrchestratorConfig(dir, "png", 4))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Images) != len(jobs) {
		t.Fatalf("expected %d images, got %d", len(jobs), len(result.Images))
	}

	for i, img := range result.Images {
		data, err := os.ReadFile(img.Path)
		if err != nil {
			t.Fatalf("%s: read: %v", img.Name, err)
		}
		decoded, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: decode: %v", img.Name, err)
		}
		w, h := jobs[i].Request.Size.Pixels()
		if decoded.Bounds().Dx() != w || decoded.Bounds().Dy() != h {
			t.Errorf("%s: expected %dx%d, got %v", img.Name, w, h, decoded.Bounds())
		}

		// The corner is the theme background, or the outline stroke over it.
		if !jobs[i].Request.Outline {
			want := color.NRGBAModel.Convert(jobs[i].Request.Theme.Background).(color.NRGBA)
			got := color.NRGBAModel.Convert(decoded.At(w-1, 0)).(color.NRGBA)
			if !closeColor(got, want) {
				t.Errorf("%s: expected background %v at corner, got %v", img.Name, want, got)
			}
		}
	}

	lorem := result.Images[len(result.Images)-1]
	if lorem.Name != "lorem" || len(lorem.Layout.Lines) < 2 {
		t.Errorf("expected the lorem banner to wrap, got %d lines", len(lorem.Layout.Lines))
	}

	if result.Sheet == nil {
		t.Fatal("expected a sheet")
	}
	if _, err := os.Stat(filepath.Join(dir, "sheet.png")); err != nil {
		t.Errorf("sheet not written: %v", err)
	}

	summaryPath := filepath.Join(dir, "summary.md")
	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
	if err := writer.Write(summaryPath, result.Summary); err != nil {
		t.Fatalf("summary: %v", err)
	}
	data, err := os.ReadFile(summaryPath)
	if err != nil || !bytes.Contains(data, []byte("| lorem | 350x100 |")) {
		t.Errorf("summary missing lorem row: %v", err)
	}
}

// TestRenderIsDeterministic checks that the same gallery seed yields the
// same pixels.
func TestRenderIsDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping render test in short mode")
	}

	log := logger.NewNoop()
	renderer := placeholder.New(ggrenderer.New(), log)

	jobs := gallery.NewConfigBuilder().WithSeed(5).WithCount(3).Build().Jobs()
	for _, job := range jobs {
		a := renderer.Render(job.Request)
		b := renderer.Render(job.Request)
		if !samePixels(a, b) {
			t.Errorf("%s: renders differ", job.Name)
		}
	}
}

func closeColor(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2 && d(a.A, b.A) <= 2
}

func samePixels(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	for y := a.Bounds().Min.Y; y < a.Bounds().Max.Y; y++ {
		for x := a.Bounds().Min.X; x < a.Bounds().Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}
