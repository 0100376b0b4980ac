package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/mathdoc/internal/version"
)

// NewRootCmd builds the mathdoc command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mathdoc",
		Short: "Rebuild structured math notes from PDFs and scans",
		Long: `mathdoc reads the positioned text of a PDF (or, with OCR support, a scanned
page image), groups it into lines, merges multi-line headings and classifies
every line as a heading, definition, theorem, proof, exercise, example,
formula or paragraph.

The result is written as a styled HTML page or printed as an outline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mathdoc %s\n", version.String()))

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newLinesCmd())
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
