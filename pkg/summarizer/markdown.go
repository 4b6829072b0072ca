package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// NewMarkdownFormatter returns a Formatter rendering a Summary as Markdown.
func NewMarkdownFormatter() Formatter {
	return FormatFunc(formatMarkdown)
}

func formatMarkdown(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l10n.T("Placeholder Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", l10n.T("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Output
	fmt.Fprintf(&b, "## %s\n\n", l10n.T("Output"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", l10n.T("Item"), l10n.T("Value"))
	dir := s.Output.Dir
	if dir == "" {
		dir = "-"
	}
	fmt.Fprintf(&b, "| %s | %s |\n", l10n.T("Directory"), dir)
	if s.Output.Format != "" {
		fmt.Fprintf(&b, "| %s | %s |\n", l10n.T("Format"), strings.ToUpper(s.Output.Format))
	}
	if s.Output.DryRun {
		fmt.Fprintf(&b, "| %s | %s |\n", l10n.T("Dry run"), l10n.T("Yes"))
	}
	fmt.Fprintf(&b, "| %s | %d |\n", l10n.T("Images"), len(s.Images))
	fmt.Fprintf(&b, "| %s | %d |\n", l10n.T("Captioned"), s.Captioned())
	fmt.Fprintf(&b, "| %s | %s |\n", l10n.T("Total pixels"), formatPixels(s.Pixels()))
	if s.Settings.Workers > 0 {
		fmt.Fprintf(&b, "| %s | %d |\n", l10n.T("Workers"), s.Settings.Workers)
	}
	if s.Settings.Seed != 0 {
		fmt.Fprintf(&b, "| %s | %d |\n", l10n.T("Seed"), s.Settings.Seed)
	}
	b.WriteString("\n")

	// Images
	if len(s.Images) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", l10n.T("Images"))
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			l10n.T("Name"), l10n.T("Size"), l10n.T("Theme"), l10n.T("Outline"),
			l10n.T("Padding"), l10n.T("Font"), l10n.T("Lines"), l10n.T("File"))
		b.WriteString("|---|---|---|---|---:|---:|---:|---|\n")
		for _, img := range s.Images {
			fmt.Fprintf(&b, "| %s | %dx%d | %s | %s | %s | %s | %d | %s |\n",
				img.Name,
				img.Width, img.Height,
				img.Theme,
				yesNo(img.Outline),
				formatPoints(img.Padding),
				formatFontSize(img.FontSize),
				img.Lines,
				orDash(img.Path),
			)
		}
		b.WriteString("\n")
	}

	// Sheet
	if s.Sheet != nil {
		fmt.Fprintf(&b, "## %s\n\n", l10n.T("Contact Sheet"))
		fmt.Fprintf(&b, "- %s: %s\n", l10n.T("File"), orDash(s.Sheet.Path))
		fmt.Fprintf(&b, "- %s: %dx%d\n", l10n.T("Size"), s.Sheet.Width, s.Sheet.Height)
		fmt.Fprintf(&b, "- %s: %d\n", l10n.T("Cells"), s.Sheet.Cells)
		if s.Settings.Columns > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", l10n.T("Columns"), s.Settings.Columns)
		}
		if s.Sheet.Path != "" {
			fmt.Fprintf(&b, "\n![%s](%s)\n", l10n.T("Contact Sheet"), s.Sheet.Path)
		}
	}

	return b.String()
}

func formatPixels(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.2f MP", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1f KP", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d px", n)
	}
}

func formatPoints(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func formatFontSize(v float64) string {
	if v <= 0 {
		return "-"
	}
	return formatPoints(v) + "pt"
}

func yesNo(v bool) string {
	if v {
		return l10n.T("Yes")
	}
	return l10n.T("No")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
