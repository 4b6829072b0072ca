package summarizer

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Placeholder Summary": "プレースホルダー生成サマリー",
		"Generated at":        "生成日時",
		"Output":              "出力",
		"Item":                "項目",
		"Value":               "値",
		"Directory":           "ディレクトリ",
		"Format":              "形式",
		"Dry run":             "ドライラン",
		"Images":              "画像",
		"Captioned":           "キャプションあり",
		"Total pixels":        "総ピクセル数",
		"Workers":             "ワーカー数",
		"Seed":                "シード",
		"Name":                "名前",
		"Size":                "サイズ",
		"Theme":               "テーマ",
		"Outline":             "枠線",
		"Padding":             "余白",
		"Font":                "フォント",
		"Lines":               "行数",
		"File":                "ファイル",
		"Contact Sheet":       "コンタクトシート",
		"Cells":               "セル数",
		"Columns":             "カラム数",
		"Yes":                 "はい",
		"No":                  "いいえ",
	})
}
