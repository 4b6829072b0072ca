package placeholder

import (
	"math"
	"strings"

	"github.com/user/imageplaceholder/pkg/ports"
)

const ellipsis = "…"

// Rect is an axis-aligned rectangle in image coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Layout describes how a request was resolved into drawing operations.
type Layout struct {
	Size       Size
	Padding    float64
	TextArea   Size
	Outline    bool
	OutlineInk Color // zero unless Outline

	Font       Font // zero Size when no text was drawn
	Caption    string
	Lines      []string
	LineHeight float64
	TextBounds Rect
}

// HasText reports whether any caption line was drawn.
func (l Layout) HasText() bool {
	return len(l.Lines) > 0
}

// textBlock is the wrapped caption measured against a text area.
type textBlock struct {
	lines      []string
	widths     []float64
	width      float64
	lineHeight float64
}

func (b textBlock) height() float64 {
	return float64(len(b.lines)) * b.lineHeight
}

// layoutText wraps text into area. Lines that do not fit vertically are
// dropped and the last kept line is truncated with an ellipsis. At least
// one line is kept.
func layoutText(canvas ports.Canvas, text string, area Size, style ports.TextStyle) textBlock {
	var block textBlock
	if text == "" || area.Empty() {
		return block
	}
	block.lineHeight = canvas.LineHeight(style)
	if !(block.lineHeight > 0) {
		return block
	}

	measure := func(s string) float64 {
		w, _ := canvas.MeasureText(s, style)
		return w
	}

	var lines []string
	for _, line := range canvas.WrapText(text, area.Width, style) {
		if measure(line) <= area.Width {
			lines = append(lines, line)
			continue
		}
		lines = append(lines, breakRunes(line, area.Width, measure)...)
	}
	if len(lines) == 0 {
		return block
	}

	maxLines := int(math.Floor(area.Height / block.lineHeight))
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncateLine(lines[maxLines-1], area.Width, measure)
	}

	block.lines = lines
	block.widths = make([]float64, len(lines))
	for i, line := range lines {
		block.widths[i] = measure(line)
		block.width = math.Max(block.width, block.widths[i])
	}
	return block
}

// breakRunes splits a word wider than width at rune boundaries.
func breakRunes(line string, width float64, measure func(string) float64) []string {
	var out []string
	var cur []rune
	for _, r := range strings.TrimSpace(line) {
		next := append(cur, r)
		if len(cur) > 0 && measure(string(next)) > width {
			out = append(out, string(cur))
			cur = []rune{r}
			continue
		}
		cur = next
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}

// truncateLine shortens line until line+"…" fits width.
func truncateLine(line string, width float64, measure func(string) float64) string {
	runes := []rune(strings.TrimRight(line, " "))
	for len(runes) > 0 {
		candidate := string(runes) + ellipsis
		if measure(candidate) <= width {
			return candidate
		}
		runes = []rune(strings.TrimRight(string(runes[:len(runes)-1]), " "))
	}
	return ellipsis
}

// lineX positions a line of width lw inside a block starting at x of width bw.
func lineX(align ports.TextAlign, x, bw, lw float64) float64 {
	switch align {
	case ports.AlignLeft:
		return x
	case ports.AlignRight:
		return x + bw - lw
	default:
		return x + (bw-lw)/2
	}
}
