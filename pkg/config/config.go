// Package config provides batch file loading and flag value parsing.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/user/imageplaceholder/pkg/orchestrator"
	"github.com/user/imageplaceholder/pkg/pipeline"
	"github.com/user/imageplaceholder/pkg/placeholder"
	"github.com/user/imageplaceholder/pkg/ports"
)

// RandomTheme is the theme name that picks a built-in theme at random.
const RandomTheme = "random"

// Config represents a batch file.
type Config struct {
	// Output
	OutputDir string `yaml:"output"`
	Format    string `yaml:"format"`
	Summary   string `yaml:"summary"`

	// Rendering
	Workers int    `yaml:"workers"`
	Seed    uint64 `yaml:"seed"`

	// Contact sheet
	Sheet SheetConfig `yaml:"sheet"`

	// Applied to every image before its own fields
	Defaults ImageConfig `yaml:"defaults"`

	Images []ImageConfig `yaml:"images"`
}

// SheetConfig represents contact sheet options.
type SheetConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Name       string `yaml:"name"`
	Columns    int    `yaml:"columns"`
	Gap        int    `yaml:"gap"`
	Margin     int    `yaml:"margin"`
	Background string `yaml:"background"`
}

// ImageConfig describes one placeholder. Unset fields fall back to the
// batch defaults, then to the renderer's own defaults.
type ImageConfig struct {
	Name   string  `yaml:"name"`
	Size   string  `yaml:"size"` // "WIDTHxHEIGHT", overrides width/height
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Theme      string `yaml:"theme"`      // built-in name or "random"
	Background string `yaml:"background"` // hex, overrides the theme background
	Foreground string `yaml:"foreground"` // hex, overrides the theme foreground

	Outline  *bool    `yaml:"outline"`
	Padding  *float64 `yaml:"padding"`
	Alpha    *float64 `yaml:"alpha"`
	FontSize float64  `yaml:"font_size"`
	Font     string   `yaml:"font"`
	Align    string   `yaml:"align"`
	Text     *string  `yaml:"text"` // {width} and {height} are replaced
}

// Defaults returns a Config with default values.
func Defaults() Config {
	sheet := pipeline.DefaultSheetInput()
	return Config{
		OutputDir: "./out",
		Format:    "png",
		Workers:   4,
		Sheet: SheetConfig{
			Name:       "sheet",
			Columns:    sheet.Columns,
			Gap:        sheet.Gap,
			Margin:     sheet.Margin,
			Background: "#ffffff",
		},
	}
}

// LoadFromFile loads and validates a batch file.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every value that would otherwise fail late.
func (c Config) Validate() error {
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if c.Sheet.Enabled {
		if c.Sheet.Columns <= 0 {
			return fmt.Errorf("sheet columns must be positive: %d", c.Sheet.Columns)
		}
		if _, err := ParseColor(c.Sheet.Background); err != nil {
			return fmt.Errorf("sheet background: %w", err)
		}
	}
	if err := c.Defaults.validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for i, img := range c.Images {
		merged := img.merge(c.Defaults)
		if err := merged.validate(); err != nil {
			return fmt.Errorf("image %d (%s): %w", i, img.label(), err)
		}
		if _, err := merged.size(); err != nil {
			return fmt.Errorf("image %d (%s): %w", i, img.label(), err)
		}
	}
	return nil
}

// Jobs builds the render jobs. src decides random themes.
func (c Config) Jobs(src placeholder.IntSource) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, 0, len(c.Images))
	for i, img := range c.Images {
		req, err := img.merge(c.Defaults).Request(src)
		if err != nil {
			return nil, fmt.Errorf("image %d (%s): %w", i, img.label(), err)
		}
		name := img.Name
		if name == "" {
			name = fmt.Sprintf("%s-%s", themeLabel(req), req.Size)
		}
		jobs = append(jobs, pipeline.Job{Name: name, Request: req})
	}
	return jobs, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	oc := orchestrator.DefaultConfig()
	oc.OutputDir = c.OutputDir
	oc.Format = strings.ToLower(c.Format)
	oc.Workers = c.Workers
	oc.Seed = c.Seed

	oc.Sheet = c.Sheet.Enabled
	if c.Sheet.Name != "" {
		oc.SheetName = c.Sheet.Name
	}
	oc.Columns = c.Sheet.Columns
	oc.Gap = c.Sheet.Gap
	oc.Margin = c.Sheet.Margin
	if c.Sheet.Background != "" {
		bg, err := ParseColor(c.Sheet.Background)
		if err != nil {
			return oc, fmt.Errorf("sheet background: %w", err)
		}
		oc.SheetBackground = bg
	}
	return oc, nil
}

func (img ImageConfig) label() string {
	if img.Name != "" {
		return img.Name
	}
	if img.Size != "" {
		return img.Size
	}
	return "unnamed"
}

// merge fills unset fields of img from defaults.
func (img ImageConfig) merge(defaults ImageConfig) ImageConfig {
	out := img
	if out.Theme == "" {
		out.Theme = defaults.Theme
	}
	if out.Background == "" {
		out.Background = defaults.Background
	}
	if out.Foreground == "" {
		out.Foreground = defaults.Foreground
	}
	if out.Outline == nil {
		out.Outline = defaults.Outline
	}
	if out.Padding == nil {
		out.Padding = defaults.Padding
	}
	if out.Alpha == nil {
		out.Alpha = defaults.Alpha
	}
	if out.FontSize == 0 {
		out.FontSize = defaults.FontSize
	}
	if out.Font == "" {
		out.Font = defaults.Font
	}
	if out.Align == "" {
		out.Align = defaults.Align
	}
	if out.Text == nil {
		out.Text = defaults.Text
	}
	if out.Size == "" && out.Width == 0 && out.Height == 0 {
		out.Size = defaults.Size
		out.Width = defaults.Width
		out.Height = defaults.Height
	}
	return out
}

func (img ImageConfig) validate() error {
	if img.Theme != "" && !strings.EqualFold(img.Theme, RandomTheme) {
		if _, ok := placeholder.ThemeByName(img.Theme); !ok {
			return fmt.Errorf("unknown theme %q", img.Theme)
		}
	}
	if img.Background != "" {
		if _, err := ParseColor(img.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if img.Foreground != "" {
		if _, err := ParseColor(img.Foreground); err != nil {
			return fmt.Errorf("foreground: %w", err)
		}
	}
	if img.Alpha != nil && (*img.Alpha < 0 || *img.Alpha > 1) {
		return fmt.Errorf("alpha must be between 0 and 1: %v", *img.Alpha)
	}
	if img.Padding != nil && *img.Padding < 0 {
		return fmt.Errorf("padding must not be negative: %v", *img.Padding)
	}
	if img.FontSize < 0 {
		return fmt.Errorf("font size must not be negative: %v", img.FontSize)
	}
	if _, err := ParseAlign(img.Align); err != nil {
		return err
	}
	return nil
}

func (img ImageConfig) size() (placeholder.Size, error) {
	if img.Size != "" {
		return ParseSize(img.Size)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return placeholder.Size{}, errors.New("size is required")
	}
	return placeholder.Size{Width: img.Width, Height: img.Height}, nil
}

// Request converts an already merged image into a render request.
func (img ImageConfig) Request(src placeholder.IntSource) (placeholder.Request, error) {
	if err := img.validate(); err != nil {
		return placeholder.Request{}, err
	}
	size, err := img.size()
	if err != nil {
		return placeholder.Request{}, err
	}

	theme, err := ResolveTheme(img.Theme, img.Background, img.Foreground, src)
	if err != nil {
		return placeholder.Request{}, err
	}
	align, _ := ParseAlign(img.Align)

	req := placeholder.Request{
		Size:      size,
		Theme:     theme,
		Padding:   img.Padding,
		Alpha:     img.Alpha,
		Alignment: align,
	}
	if img.Outline != nil {
		req.Outline = *img.Outline
	}
	if img.FontSize > 0 || img.Font != "" {
		req.Font = &placeholder.Font{Size: img.FontSize, Path: img.Font}
	}
	if img.Text != nil {
		req.Text = TemplateText(*img.Text)
	}
	return req, nil
}

// ResolveTheme picks a theme by name ("" keeps the renderer default,
// "random" draws from src) and applies colour overrides. The result is
// nil when nothing was chosen.
func ResolveTheme(name, background, foreground string, src placeholder.IntSource) (*placeholder.Theme, error) {
	var theme *placeholder.Theme
	switch {
	case name == "":
	case strings.EqualFold(name, RandomTheme):
		t := placeholder.RandomTheme(src)
		theme = &t
	default:
		t, ok := placeholder.ThemeByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		theme = &t
	}

	if background == "" && foreground == "" {
		return theme, nil
	}

	custom := placeholder.Gray
	if theme != nil {
		custom = *theme
	}
	custom.Name = "custom"
	if background != "" {
		bg, err := ParseColor(background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		custom.Background = bg
	}
	if foreground != "" {
		fg, err := ParseColor(foreground)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		custom.Foreground = fg
	}
	return &custom, nil
}

// TemplateText returns a caption generator replacing {width} and {height}
// with the truncated image dimensions.
func TemplateText(template string) placeholder.TextFunc {
	return func(size placeholder.Size) string {
		w, h := size.Pixels()
		return strings.NewReplacer(
			"{width}", strconv.Itoa(w),
			"{height}", strconv.Itoa(h),
		).Replace(template)
	}
}

// ParseSize parses "WIDTHxHEIGHT" (e.g. "350x100" or "80.5x60").
func ParseSize(s string) (placeholder.Size, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return placeholder.Size{}, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return placeholder.Size{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return placeholder.Size{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 || math.IsInf(w, 0) || math.IsInf(h, 0) || math.IsNaN(w) || math.IsNaN(h) {
		return placeholder.Size{}, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return placeholder.Size{Width: w, Height: h}, nil
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (ports.ImageFormat, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return ports.FormatPNG, nil
	case "jpg", "jpeg":
		return ports.FormatJPEG, nil
	default:
		return ports.FormatPNG, fmt.Errorf("unsupported format %q", s)
	}
}

// ParseAlign parses a text alignment name; empty means center.
func ParseAlign(s string) (ports.TextAlign, error) {
	switch strings.ToLower(s) {
	case "", "center", "left", "right":
		return ports.ParseTextAlign(strings.ToLower(s)), nil
	default:
		return ports.AlignCenter, fmt.Errorf("unknown alignment %q", s)
	}
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the '#' is optional).
func ParseColor(hex string) (placeholder.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var alpha string
	switch len(s) {
	case 3, 6:
	case 8:
		s, alpha = s[:6], s[6:]
	default:
		return placeholder.Color{}, fmt.Errorf("invalid color %q", hex)
	}

	parsed, err := colorful.Hex("#" + s)
	if err != nil {
		return placeholder.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := parsed.RGB255()
	c := placeholder.Hex(uint32(r)<<16 | uint32(g)<<8 | uint32(b))

	if alpha != "" {
		a, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return placeholder.Color{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		c.A = float64(a) / 255
	}
	return c, nil
}

func themeLabel(req placeholder.Request) string {
	if req.Theme == nil {
		return placeholder.Gray.Name
	}
	return req.Theme.Name
}
