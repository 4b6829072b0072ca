package placeholder

import (
	"math/rand/v2"
	"strings"
)

// Theme is a background/foreground colour pair.
type Theme struct {
	Name       string
	Background Color
	Foreground Color
}

// NewTheme builds a custom theme.
func NewTheme(bg, fg Color) Theme {
	return Theme{Name: "custom", Background: bg, Foreground: fg}
}

// Built-in themes, after holder.js.
var (
	Gray       = Theme{Name: "gray", Background: Hex(0xEEEEEE), Foreground: Hex(0xAAAAAA)}
	Social     = Theme{Name: "social", Background: Hex(0x3A5A97), Foreground: Hex(0xFFFFFF)}
	Industrial = Theme{Name: "industrial", Background: Hex(0x434A52), Foreground: Hex(0xC2F200)}
	Sky        = Theme{Name: "sky", Background: Hex(0x0D8FDB), Foreground: Hex(0xFFFFFF)}
	Vine       = Theme{Name: "vine", Background: Hex(0x39DBAC), Foreground: Hex(0x1E292C)}
	Lava       = Theme{Name: "lava", Background: Hex(0xF8591A), Foreground: Hex(0x1C2846)}
)

// Themes returns the built-in themes in selection order.
func Themes() []Theme {
	return []Theme{Gray, Social, Industrial, Sky, Vine, Lava}
}

// ThemeByName looks up a built-in theme, ignoring case.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes() {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// IntSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// RandomTheme picks one of the six built-in themes uniformly using src.
func RandomTheme(src IntSource) Theme {
	switch src.IntN(6) {
	case 0:
		return Gray
	case 1:
		return Social
	case 2:
		return Industrial
	case 3:
		return Sky
	case 4:
		return Vine
	case 5:
		return Lava
	default:
		return Gray
	}
}

// Random picks a built-in theme using the process-wide random source.
func Random() Theme {
	return RandomTheme(defaultSource{})
}

// RandomRequest builds a request with a random theme and outline flag,
// the way the demo grid fills its cells.
func RandomRequest(src IntSource, size Size) Request {
	theme := RandomTheme(src)
	return Request{
		Size:    size,
		Theme:   &theme,
		Outline: src.IntN(2) == 1,
	}
}
