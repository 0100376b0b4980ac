package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/mathdoc"
	"github.com/tsawler/mathdoc/layout"
)

// extractFlags are the flags shared by every command that analyzes a file
type extractFlags struct {
	pages       []int
	metric      string
	lang        string
	noMerge     bool
	keepNumeric bool
	sortByY     bool
	ocrLang     string
}

func (f *extractFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.pages, "pages", nil, "Pages to process, 1-indexed (e.g. 1,3,5; default all)")
	cmd.Flags().StringVar(&f.metric, "metric", "mean", "Line font size metric (mean, max)")
	cmd.Flags().StringVar(&f.lang, "lang", "", "Document language for markers and output (es, en; default both markers, Spanish output)")
	cmd.Flags().BoolVar(&f.noMerge, "no-merge", false, "Do not merge multi-line headings or fold superscripts")
	cmd.Flags().BoolVar(&f.keepNumeric, "keep-numeric", false, "Keep lines that are a bare 1-3 digit numeral")
	cmd.Flags().BoolVar(&f.sortByY, "sort-by-position", false, "Sort fragments top to bottom before grouping them into lines")
	cmd.Flags().StringVar(&f.ocrLang, "ocr-lang", mathdoc.DefaultOCRLanguage, "Tesseract language for image inputs")
}

// extractor builds the configured extractor for input
func (f *extractFlags) extractor(input string) (*mathdoc.Extractor, error) {
	metric, err := layout.ParseFontMetric(f.metric)
	if err != nil {
		return nil, err
	}

	ext := mathdoc.Open(input).
		FontMetric(metric).
		OCRLanguage(f.ocrLang)
	if len(f.pages) > 0 {
		ext = ext.Pages(f.pages...)
	}
	if f.lang != "" {
		ext = ext.Language(f.lang)
	}
	if f.noMerge {
		ext = ext.NoTitleMerge()
	}
	if f.keepNumeric {
		ext = ext.KeepNumericLines()
	}
	if f.sortByY {
		ext = ext.SortByPosition()
	}
	return ext, nil
}
