package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/imageplaceholder/pkg/ports"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 60)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("expected 100x60, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if _, _, _, a := img.At(10, 10).RGBA(); a != 0 {
		t.Errorf("expected a transparent canvas, got alpha %d", a)
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 30 || decoded.Bounds().Dy() != 20 {
		t.Errorf("expected 30x20, got %v", decoded.Bounds())
	}
}

func TestRenderer_EncodeJPEG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))

	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestRenderer_EncodeUnsupported(t *testing.T) {
	r := New()
	if _, err := r.EncodeImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), ports.ImageFormat(99), 0); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	canvas := New().CreateCanvas(100, 100)

	canvas.DrawRect(10, 10, 30, 30, color.RGBA{R: 255, A: 255})

	img := canvas.ToImage()
	if got := nrgbaAt(img, 20, 20); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("expected red pixel inside rectangle, got %v", got)
	}
	if _, _, _, a := img.At(50, 50).RGBA(); a != 0 {
		t.Error("expected transparent pixel outside rectangle")
	}
}

func TestCanvas_SetAlpha(t *testing.T) {
	canvas := New().CreateCanvas(20, 20)

	canvas.SetAlpha(0.5)
	canvas.DrawRect(0, 0, 20, 20, color.White)

	got := nrgbaAt(canvas.ToImage(), 10, 10)
	if got.A < 127 || got.A > 128 {
		t.Errorf("expected half alpha, got %d", got.A)
	}
}

func TestCanvas_SetAlphaClamps(t *testing.T) {
	canvas := New().CreateCanvas(10, 10)

	canvas.SetAlpha(3)
	canvas.DrawRect(0, 0, 10, 10, color.Black)

	if got := nrgbaAt(canvas.ToImage(), 5, 5); got.A != 255 {
		t.Errorf("alpha above 1 should clamp to opaque, got %d", got.A)
	}
}

func TestCanvas_DrawRectStroke(t *testing.T) {
	canvas := New().CreateCanvas(100, 100)

	canvas.DrawRectStroke(10, 10, 30, 30, color.Black, 2)

	img := canvas.ToImage()
	if _, _, _, a := img.At(10, 20).RGBA(); a == 0 {
		t.Error("expected non-transparent pixel on border")
	}
	if _, _, _, a := img.At(25, 25).RGBA(); a != 0 {
		t.Error("expected the inside of a stroked rectangle to stay empty")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	canvas := New().CreateCanvas(100, 100)
	canvas.DrawRect(0, 0, 100, 100, color.White)

	canvas.DrawLine(0, 50, 100, 50, color.Black, 2)

	r1, g1, b1, _ := canvas.ToImage().At(50, 50).RGBA()
	if r1 == 65535 && g1 == 65535 && b1 == 65535 {
		t.Error("expected non-white pixel on line")
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	canvas := New().CreateCanvas(100, 100)

	small := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			small.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	canvas.DrawImage(small, 10, 10)
	canvas.SetAlpha(0.5)
	canvas.DrawImage(small, 60, 60)

	img := canvas.ToImage()
	if got := nrgbaAt(img, 15, 15); got.R != 255 || got.A != 255 {
		t.Errorf("expected opaque red pixel, got %v", got)
	}
	if got := nrgbaAt(img, 65, 65); got.A < 127 || got.A > 128 {
		t.Errorf("expected half-transparent red pixel, got %v", got)
	}
}

func TestCanvas_TextMetrics(t *testing.T) {
	canvas := New().CreateCanvas(200, 50)
	style := ports.TextStyle{FontSize: 14, Color: color.Black}

	w, h := canvas.MeasureText("Hello World", style)
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive metrics, got %vx%v", w, h)
	}
	if lh := canvas.LineHeight(style); lh != h {
		t.Errorf("line height %v should match measured height %v", lh, h)
	}

	wider, _ := canvas.MeasureText("Hello World!!", style)
	if wider <= w {
		t.Errorf("longer text should measure wider: %v <= %v", wider, w)
	}

	bigger, _ := canvas.MeasureText("Hello World", ports.TextStyle{FontSize: 28})
	if bigger <= w {
		t.Errorf("larger font should measure wider: %v <= %v", bigger, w)
	}
}

func TestCanvas_TextMetricsWithoutFont(t *testing.T) {
	canvas := New().CreateCanvas(10, 10)

	w, h := canvas.MeasureText("x", ports.TextStyle{})
	if w != 0 || h != 0 {
		t.Errorf("zero font size should measure nothing, got %vx%v", w, h)
	}
	if lines := canvas.WrapText("a b", 10, ports.TextStyle{}); lines != nil {
		t.Errorf("zero font size should wrap to nothing, got %q", lines)
	}
}

func TestCanvas_WrapText(t *testing.T) {
	canvas := New().CreateCanvas(200, 200)
	style := ports.TextStyle{FontSize: 12}

	text := "the quick brown fox jumps over the lazy dog"
	full, _ := canvas.MeasureText(text, style)

	lines := canvas.WrapText(text, full/2, style)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into several lines, got %q", lines)
	}
	for _, line := range lines {
		if w, _ := canvas.MeasureText(line, style); w > full/2 {
			t.Errorf("line %q is %v wide, limit %v", line, w, full/2)
		}
	}
}

func TestCanvas_FontPathFallback(t *testing.T) {
	canvas := New().CreateCanvas(100, 40)
	builtin := ports.TextStyle{FontSize: 12}
	missing := ports.TextStyle{FontSize: 12, FontPath: "/nonexistent/font.ttf"}

	w1, _ := canvas.MeasureText("fallback", builtin)
	w2, _ := canvas.MeasureText("fallback", missing)
	if w1 != w2 {
		t.Errorf("missing font file should fall back to the built-in face: %v != %v", w1, w2)
	}
}

func TestCanvas_DrawText(t *testing.T) {
	canvas := New().CreateCanvas(200, 50)
	canvas.DrawRect(0, 0, 200, 50, color.White)

	style := ports.TextStyle{FontSize: 20, Color: color.Black}
	canvas.DrawText("Hello", 10, 10, style)

	img := canvas.ToImage()
	inked := false
	for y := 10; y < 35 && !inked; y++ {
		for x := 10; x < 70; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("expected dark glyph pixels below the text origin")
	}
}

func TestLoadFont_Cached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	first, err := loadFont(path)
	if err != nil {
		t.Fatalf("loadFont failed: %v", err)
	}
	second, err := loadFont(path)
	if err != nil {
		t.Fatalf("loadFont failed: %v", err)
	}
	if first != second {
		t.Error("expected the parsed font to be reused")
	}

	canvas := New().CreateCanvas(100, 40)
	w1, _ := canvas.MeasureText("cached", ports.TextStyle{FontSize: 12})
	w2, _ := canvas.MeasureText("cached", ports.TextStyle{FontSize: 12, FontPath: path})
	if w1 != w2 {
		t.Errorf("same font from file should measure like the built-in face: %v != %v", w1, w2)
	}
}

func TestLoadFont_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFont(path); err == nil {
		t.Error("expected parse error")
	}
	if _, err := loadFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected read error")
	}
}
