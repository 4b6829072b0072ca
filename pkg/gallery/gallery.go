// Package gallery builds the demo set: a grid of randomly sized and themed
// placeholders plus a wide lorem ipsum banner.
package gallery

import (
	"fmt"
	"math/rand/v2"

	"github.com/user/imageplaceholder/pkg/orchestrator"
	"github.com/user/imageplaceholder/pkg/pipeline"
	"github.com/user/imageplaceholder/pkg/placeholder"
)

// Lorem is the banner caption.
const Lorem = "Lorem ipsum dolor sit amet, consectetur adipisicing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."

// Config represents the configuration for a gallery run.
type Config struct {
	// Grid cells
	Count   int     // Number of random cells (default: 12)
	MinSide float64 // Smallest random width/height (default: 50)
	MaxSide float64 // Largest random width/height (default: 150)

	// Lorem banner
	Banner         bool               // Include the banner (default: true)
	BannerSize     placeholder.Size   // default: 350x100
	BannerFontSize float64            // default: 14
	BannerTheme    *placeholder.Theme // nil picks a random theme

	// Randomness
	Seed uint64 // 0 draws a seed from the process source

	// Sheet
	Sheet   bool
	Columns int // default: 3
}

// ConfigBuilder provides a fluent interface for building a Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a builder with the demo defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: demoDefaults()}
}

func demoDefaults() Config {
	return Config{
		Count:          12,
		MinSide:        50,
		MaxSide:        150,
		Banner:         true,
		BannerSize:     placeholder.Size{Width: 350, Height: 100},
		BannerFontSize: 14,
		Columns:        3,
	}
}

// Build validates and returns the Config. Out-of-range values are clamped.
func (b *ConfigBuilder) Build() Config {
	c := b.config
	if c.Count < 0 {
		c.Count = 0
	}
	if c.MinSide < 1 {
		c.MinSide = 1
	}
	if c.MaxSide < c.MinSide {
		c.MaxSide = c.MinSide
	}
	if c.Columns < 1 {
		c.Columns = 1
	}
	if c.Seed == 0 {
		c.Seed = rand.Uint64()
	}
	return c
}

// WithCount sets the number of random cells.
func (b *ConfigBuilder) WithCount(n int) *ConfigBuilder {
	b.config.Count = n
	return b
}

// WithSideRange sets the random width/height range.
func (b *ConfigBuilder) WithSideRange(lo, hi float64) *ConfigBuilder {
	b.config.MinSide = lo
	b.config.MaxSide = hi
	return b
}

// WithSeed makes the gallery reproducible.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.config.Seed = seed
	return b
}

// WithBanner toggles the lorem banner.
func (b *ConfigBuilder) WithBanner(enabled bool) *ConfigBuilder {
	b.config.Banner = enabled
	return b
}

// WithBannerTheme fixes the banner theme.
func (b *ConfigBuilder) WithBannerTheme(theme placeholder.Theme) *ConfigBuilder {
	b.config.BannerTheme = &theme
	return b
}

// WithSheet enables a contact sheet with the given column count.
func (b *ConfigBuilder) WithSheet(columns int) *ConfigBuilder {
	b.config.Sheet = true
	b.config.Columns = columns
	return b
}

// Jobs generates the gallery jobs. The same seed yields the same jobs.
func (c Config) Jobs() []pipeline.Job {
	src := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9E3779B97F4A7C15))

	jobs := make([]pipeline.Job, 0, c.Count+1)
	for i := 0; i < c.Count; i++ {
		size := placeholder.Size{
			Width:  c.side(src),
			Height: c.side(src),
		}
		jobs = append(jobs, pipeline.Job{
			Name:    fmt.Sprintf("cell-%02d", i+1),
			Request: placeholder.RandomRequest(src, size),
		})
	}

	if c.Banner {
		theme := placeholder.RandomTheme(src)
		if c.BannerTheme != nil {
			theme = *c.BannerTheme
		}
		font := placeholder.SystemFont(c.BannerFontSize)
		jobs = append(jobs, pipeline.Job{
			Name: "lorem",
			Request: placeholder.Request{
				Size:    c.BannerSize,
				Theme:   &theme,
				Outline: src.IntN(2) == 1,
				Font:    &font,
				Text:    func(placeholder.Size) string { return Lorem },
			},
		})
	}
	return jobs
}

// side returns a uniform random side length in [MinSide, MaxSide].
func (c Config) side(src *rand.Rand) float64 {
	return c.MinSide + src.Float64()*(c.MaxSide-c.MinSide)
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(outputDir, format string, workers int) orchestrator.Config {
	oc := orchestrator.DefaultConfig()
	oc.OutputDir = outputDir
	oc.Format = format
	oc.Workers = workers
	oc.Seed = c.Seed
	oc.Sheet = c.Sheet
	oc.Columns = c.Columns
	return oc
}
