package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/mathdoc/render"
)

func newConvertCmd() *cobra.Command {
	var flags extractFlags
	var output, title, date string

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a PDF or scanned page into an HTML page",
		Long: `Convert reads the input, reconstructs its structure and writes a standalone
HTML page. The title defaults to the input file name and the date to today,
formatted for the document language.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			ext, err := flags.extractor(input)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				ext = ext.Title(title)
			}
			if cmd.Flags().Changed("date") {
				ext = ext.Date(date)
			}

			doc, warnings, err := ext.Document()
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutput(input)
			}
			if err := render.WriteHTMLFile(output, doc, ext.HTMLOptions()); err != nil {
				return err
			}

			FormatWarnings(cmd.ErrOrStderr(), warnings)
			FormatSummary(cmd.OutOrStdout(), input, output, doc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output HTML file (default: input with .html)")
	cmd.Flags().StringVar(&title, "title", "", "Document title (default: input file name)")
	cmd.Flags().StringVar(&date, "date", "", "Date line (default: today)")
	flags.register(cmd)

	return cmd
}

// defaultOutput replaces the input extension with .html
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
}
