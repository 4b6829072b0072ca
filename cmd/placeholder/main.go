// Package main provides the CLI entry point for placeholder.
package main

import (
	"context"
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/imageplaceholder/pkg/adapters/filesink"
	"github.com/user/imageplaceholder/pkg/adapters/ggrenderer"
	"github.com/user/imageplaceholder/pkg/adapters/logger"
	"github.com/user/imageplaceholder/pkg/adapters/nullsink"
	"github.com/user/imageplaceholder/pkg/adapters/osfilesystem"
	"github.com/user/imageplaceholder/pkg/config"
	"github.com/user/imageplaceholder/pkg/gallery"
	"github.com/user/imageplaceholder/pkg/orchestrator"
	"github.com/user/imageplaceholder/pkg/pipeline"
	"github.com/user/imageplaceholder/pkg/placeholder"
	"github.com/user/imageplaceholder/pkg/ports"
	"github.com/user/imageplaceholder/pkg/stages/render"
	"github.com/user/imageplaceholder/pkg/stages/sheet"
	"github.com/user/imageplaceholder/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"${help_generate}"`
	Gallery  GalleryCmd  `cmd:"" help:"${help_gallery}"`
	Batch    BatchCmd    `cmd:"" help:"${help_batch}"`
	Themes   ThemesCmd   `cmd:"" help:"${help_themes}"`
	Version  VersionCmd  `cmd:"" help:"${help_version}"`
}

// LogFlags are shared by every rendering command.
type LogFlags struct {
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"${help_log_level}"`
	Quiet    bool   `short:"Q" help:"${help_quiet}"`
}

func (f LogFlags) newLogger() ports.Logger {
	if f.Quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(f.LogLevel))
}

// GenerateCmd renders a single placeholder.
type GenerateCmd struct {
	Size   string `arg:"" help:"${help_size}"`
	Output string `short:"o" required:"" help:"${help_output_file}"`

	// Style
	Theme      string   `short:"t" help:"${help_theme}"`
	Background string   `help:"${help_background}"`
	Foreground string   `help:"${help_foreground}"`
	Outline    bool     `help:"${help_outline}"`
	Alpha      *float64 `help:"${help_alpha}"`
	Seed       *uint64  `help:"${help_seed}"`

	// Caption
	Padding  *float64 `help:"${help_padding}"`
	FontSize *float64 `help:"${help_font_size}"`
	Font     string   `help:"${help_font}" type:"existingfile"`
	Align    string   `default:"center" enum:"left,center,right" help:"${help_align}"`
	Text     *string  `help:"${help_text}"`

	LogFlags `embed:""`
}

// GalleryCmd renders the demo gallery.
type GalleryCmd struct {
	Output  string  `short:"o" default:"./gallery" help:"${help_output_dir}"`
	Count   int     `short:"n" default:"12" help:"${help_count}"`
	MinSide float64 `default:"50" help:"${help_min_side}"`
	MaxSide float64 `default:"150" help:"${help_max_side}"`
	Seed    *uint64 `help:"${help_seed}"`

	NoBanner bool `help:"${help_no_banner}"`
	Sheet    bool `help:"${help_sheet}"`
	Columns  int  `short:"c" default:"3" help:"${help_columns}"`

	OutputFlags `embed:""`
	LogFlags    `embed:""`
}

// BatchCmd renders the images described in a YAML file.
type BatchCmd struct {
	Config string  `arg:"" type:"existingfile" help:"${help_config}"`
	Output *string `short:"o" help:"${help_output_dir_override}"`
	Seed   *uint64 `help:"${help_seed}"`

	DryRun  bool    `help:"${help_dry_run}"`
	Summary *string `help:"${help_summary}"`

	LogFlags `embed:""`
}

// OutputFlags control where gallery images go.
type OutputFlags struct {
	Format  string `default:"png" enum:"png,jpeg" help:"${help_format}"`
	Workers int    `short:"w" default:"0" help:"${help_workers}"`
	DryRun  bool   `help:"${help_dry_run}"`
	Summary string `help:"${help_summary}"`
}

// ThemesCmd lists the built-in themes.
type ThemesCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("placeholder"),
		kong.Description(l10n.T("Generate placeholder images with themed backgrounds and captions.")),
		kong.UsageOnError(),
		helpVars(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the generate command.
func (cmd *GenerateCmd) Run() error {
	log := cmd.newLogger()

	format, err := formatFromPath(cmd.Output)
	if err != nil {
		return err
	}

	outline := cmd.Outline
	img := config.ImageConfig{
		Size:       cmd.Size,
		Theme:      cmd.Theme,
		Background: cmd.Background,
		Foreground: cmd.Foreground,
		Outline:    &outline,
		Padding:    cmd.Padding,
		Alpha:      cmd.Alpha,
		Font:       cmd.Font,
		Align:      cmd.Align,
		Text:       cmd.Text,
	}
	if cmd.FontSize != nil {
		img.FontSize = *cmd.FontSize
	}

	req, err := img.Request(newSource(cmd.Seed))
	if err != nil {
		return err
	}

	dir := filepath.Dir(cmd.Output)
	name := strings.TrimSuffix(filepath.Base(cmd.Output), filepath.Ext(cmd.Output))
	jobs := []pipeline.Job{{Name: name, Request: req}}

	oc := orchestrator.DefaultConfig()
	oc.OutputDir = dir
	oc.Format = formatName(format)
	oc.Workers = 1

	_, err = run(log, jobs, oc, runOptions{dir: dir, format: format})
	return err
}

// Run executes the gallery command.
func (cmd *GalleryCmd) Run() error {
	log := cmd.newLogger()

	b := gallery.NewConfigBuilder().
		WithCount(cmd.Count).
		WithSideRange(cmd.MinSide, cmd.MaxSide).
		WithBanner(!cmd.NoBanner)
	if cmd.Seed != nil {
		b.WithSeed(*cmd.Seed)
	}
	if cmd.Sheet {
		b.WithSheet(cmd.Columns)
	}
	cfg := b.Build()

	format, err := config.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}
	workers := workerCount(cmd.Workers)

	log.Info("Rendering gallery of %d images (seed %d)", cfg.Count, cfg.Seed)

	_, err = run(log, cfg.Jobs(), cfg.ToOrchestratorConfig(cmd.Output, formatName(format), workers), runOptions{
		dir:     cmd.Output,
		format:  format,
		dryRun:  cmd.DryRun,
		summary: cmd.Summary,
	})
	return err
}

// Run executes the batch command.
func (cmd *BatchCmd) Run() error {
	log := cmd.newLogger()
	fs := osfilesystem.New()

	cfg, err := config.LoadFromFile(fs, cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Output != nil {
		cfg.OutputDir = *cmd.Output
	}
	if cmd.Seed != nil {
		cfg.Seed = *cmd.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	summary := cfg.Summary
	if cmd.Summary != nil {
		summary = *cmd.Summary
	}

	jobs, err := cfg.Jobs(newSource(&cfg.Seed))
	if err != nil {
		return err
	}
	oc, err := cfg.ToOrchestratorConfig()
	if err != nil {
		return err
	}
	oc.Workers = workerCount(cfg.Workers)
	format, _ := config.ParseFormat(cfg.Format)

	log.Info("Loaded %d images from %s", len(jobs), cmd.Config)

	_, err = run(log, jobs, oc, runOptions{
		dir:     cfg.OutputDir,
		format:  format,
		dryRun:  cmd.DryRun,
		summary: summary,
	})
	return err
}

// Run executes the themes command.
func (cmd *ThemesCmd) Run() error {
	for _, t := range placeholder.Themes() {
		fmt.Printf("%-12s %s %s\n", t.Name, hexColor(t.Background), hexColor(t.Foreground))
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("placeholder version %s", version))
	return nil
}

type runOptions struct {
	dir     string
	format  ports.ImageFormat
	dryRun  bool
	summary string
}

// run wires adapters and stages and executes one orchestrated batch.
func run(log ports.Logger, jobs []pipeline.Job, oc orchestrator.Config, opts runOptions) (orchestrator.RunResult, error) {
	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	backend := ggrenderer.New()

	var sink ports.ImageSink
	if opts.dryRun {
		sink = nullsink.New()
	} else {
		if err := fs.MkdirAll(opts.dir); err != nil {
			return orchestrator.RunResult{}, fmt.Errorf("create output directory: %w", err)
		}
		sink = filesink.New(opts.dir, opts.format, fs, backend)
	}

	// Create stages
	renderer := placeholder.New(backend, log)
	renderStage := render.NewStage(renderer, log, oc.Workers)
	sheetStage := sheet.NewStage(backend, log)

	orch := orchestrator.New(renderStage, sheetStage, sink, log)

	result, err := orch.Run(ctx, jobs, oc)
	if err != nil {
		return result, err
	}

	if opts.summary != "" {
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := writer.Write(opts.summary, result.Summary); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", opts.summary)
		}
	}
	return result, nil
}

func newSource(seed *uint64) placeholder.IntSource {
	s := rand.Uint64()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(s, s))
}

func workerCount(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

func formatFromPath(path string) (ports.ImageFormat, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return ports.FormatPNG, fmt.Errorf("output %q has no extension (.png or .jpg)", path)
	}
	return config.ParseFormat(ext)
}

func formatName(f ports.ImageFormat) string {
	if f == ports.FormatJPEG {
		return "jpeg"
	}
	return "png"
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
