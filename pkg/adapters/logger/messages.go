package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Renderer (debug)
		"Rendering %s placeholder %s":                        "%s テーマのプレースホルダー %s を描画中",
		"Empty image %s, nothing to draw":                    "空の画像 %s のため描画しません",
		"Padding %.1f, text area %.1fx%.1f":                  "余白 %.1f, テキスト領域 %.1fx%.1f",
		"Text area is empty, skipping text":                  "テキスト領域が空のためテキストを省略します",
		"No readable font size for text area, skipping text": "読めるフォントサイズがないためテキストを省略します",
		"Caption drawn in %d lines at %.1fpt":                "キャプションを %d 行 (%.1fpt) で描画しました",

		// Render stage
		"Rendering %d placeholders with %d workers": "%d 枚のプレースホルダーを %d ワーカーで描画中",
		"Rendering completed":                       "描画が完了しました",

		// Sheet stage
		"Composing sheet: %d cells, %d columns, %dx%d": "シートを合成中: %d セル, %d カラム, %dx%d",

		// Orchestration (info)
		"Saved %s":                       "%s を保存しました",
		"Generated %d images":            "%d 枚の画像を生成しました",
		"Dry run, %d images not written": "ドライラン: %d 枚の画像は書き込まれていません",
		"Summary saved to %s":            "サマリーを %s に保存しました",

		// Errors
		"Failed to save %s: %s":             "%s の保存に失敗しました: %s",
		"Failed to render placeholders: %s": "プレースホルダーの描画に失敗しました: %s",
		"Failed to compose sheet: %s":       "シートの合成に失敗しました: %s",
	})
}
