// Package main provides localization for the placeholder CLI.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
)

// helpTexts maps kong interpolation variables to English help strings.
var helpTexts = map[string]string{
	// Commands
	"help_generate": "Render a single placeholder image.",
	"help_gallery":  "Render a gallery of random placeholders and a lorem ipsum banner.",
	"help_batch":    "Render the placeholders described in a YAML batch file.",
	"help_themes":   "List the built-in themes.",
	"help_version":  "Show version information.",

	// Generate
	"help_size":        "Image size as WIDTHxHEIGHT (e.g. 350x100).",
	"help_output_file": "Output file path; the extension selects PNG or JPEG.",
	"help_theme":       "Theme name (gray, social, industrial, sky, vine, lava) or random.",
	"help_background":  "Background color (hex, e.g. #eeeeee), overrides the theme.",
	"help_foreground":  "Text color (hex, e.g. #aaaaaa), overrides the theme.",
	"help_outline":     "Draw an outline with a diagonal cross.",
	"help_alpha":       "Opacity of the whole image (0-1).",
	"help_seed":        "Random seed for reproducible output.",
	"help_padding":     "Padding around the caption in points (default: computed).",
	"help_font_size":   "Caption font size in points (default: computed).",
	"help_font":        "TrueType font file for the caption (default: Go Regular).",
	"help_align":       "Caption line alignment (left, center, right).",
	"help_text":        "Caption text; {width} and {height} are replaced (default: WIDTHxHEIGHT).",

	// Gallery
	"help_output_dir": "Output directory.",
	"help_count":      "Number of random placeholders.",
	"help_min_side":   "Smallest random width or height.",
	"help_max_side":   "Largest random width or height.",
	"help_no_banner":  "Skip the lorem ipsum banner.",
	"help_sheet":      "Also compose all images into a contact sheet.",
	"help_columns":    "Number of contact sheet columns.",

	// Batch
	"help_config":              "YAML batch file.",
	"help_output_dir_override": "Output directory, overrides the batch file.",

	// Output
	"help_format":  "Image format (png, jpeg).",
	"help_workers": "Number of render workers (0 = one per CPU).",
	"help_dry_run": "Render without writing any files.",
	"help_summary": "Write a Markdown summary to this file.",

	// Logging
	"help_log_level": "Log level (debug, info, warn, error).",
	"help_quiet":     "Suppress all log output.",
}

// helpVars translates every help string for kong.
func helpVars() kong.Vars {
	vars := kong.Vars{}
	for key, text := range helpTexts {
		vars[key] = l10n.T(text)
	}
	return vars
}

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Generate placeholder images with themed backgrounds and captions.": "テーマ付きの背景とキャプションを持つプレースホルダー画像を生成します。",

		// Commands
		"Render a single placeholder image.":                                "プレースホルダー画像を1枚描画",
		"Render a gallery of random placeholders and a lorem ipsum banner.": "ランダムなプレースホルダーとLorem ipsumバナーのギャラリーを描画",
		"Render the placeholders described in a YAML batch file.":           "YAMLバッチファイルに記述されたプレースホルダーを描画",
		"List the built-in themes.":                                         "組み込みテーマを一覧表示",
		"Show version information.":                                         "バージョン情報を表示",

		// Generate flags
		"Image size as WIDTHxHEIGHT (e.g. 350x100).":                               "画像サイズ（幅x高さ、例: 350x100）",
		"Output file path; the extension selects PNG or JPEG.":                     "出力ファイルパス（拡張子でPNGかJPEGを選択）",
		"Theme name (gray, social, industrial, sky, vine, lava) or random.":        "テーマ名（gray, social, industrial, sky, vine, lava）または random",
		"Background color (hex, e.g. #eeeeee), overrides the theme.":               "背景色（16進数、例: #eeeeee）。テーマを上書き",
		"Text color (hex, e.g. #aaaaaa), overrides the theme.":                     "文字色（16進数、例: #aaaaaa）。テーマを上書き",
		"Draw an outline with a diagonal cross.":                                   "枠線と対角線を描画",
		"Opacity of the whole image (0-1).":                                        "画像全体の不透明度（0-1）",
		"Random seed for reproducible output.":                                     "再現可能な出力のための乱数シード",
		"Padding around the caption in points (default: computed).":                "キャプション周囲の余白（ポイント、デフォルト: 自動計算）",
		"Caption font size in points (default: computed).":                         "キャプションのフォントサイズ（ポイント、デフォルト: 自動計算）",
		"TrueType font file for the caption (default: Go Regular).":                "キャプション用TrueTypeフォントファイル（デフォルト: Go Regular）",
		"Caption line alignment (left, center, right).":                            "キャプション行の揃え（left, center, right）",
		"Caption text; {width} and {height} are replaced (default: WIDTHxHEIGHT).": "キャプション文字列。{width} と {height} は置換されます（デフォルト: 幅x高さ）",

		// Gallery flags
		"Output directory.":                             "出力ディレクトリ",
		"Number of random placeholders.":                "ランダムなプレースホルダーの数",
		"Smallest random width or height.":              "ランダムな幅・高さの最小値",
		"Largest random width or height.":               "ランダムな幅・高さの最大値",
		"Skip the lorem ipsum banner.":                  "Lorem ipsumバナーを省略",
		"Also compose all images into a contact sheet.": "全画像をコンタクトシートにも合成",
		"Number of contact sheet columns.":              "コンタクトシートのカラム数",

		// Batch flags
		"YAML batch file.":                            "YAMLバッチファイル",
		"Output directory, overrides the batch file.": "出力ディレクトリ（バッチファイルを上書き）",

		// Output flags
		"Image format (png, jpeg).":                   "画像形式（png, jpeg）",
		"Number of render workers (0 = one per CPU).": "描画ワーカー数（0 = CPUごとに1つ）",
		"Render without writing any files.":           "ファイルを書き込まずに描画",
		"Write a Markdown summary to this file.":      "Markdownサマリーをこのファイルに出力",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Runtime messages
		"Rendering gallery of %d images (seed %d)": "%d 枚のギャラリーを描画中 (シード %d)",
		"Loaded %d images from %s":                 "%[2]s から %[1]d 枚の画像を読み込みました",
		"Interrupted, shutting down...":            "中断されました。シャットダウン中...",
		"Failed to write summary: %s":              "サマリーの書き込みに失敗しました: %s",
		"placeholder version %s":                   "placeholder バージョン %s",
	})
}
