package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/mathdoc/model"
	"github.com/tsawler/mathdoc/render"
)

func newLinesCmd() *cobra.Command {
	var flags extractFlags
	var plain, showPages bool
	var only []string

	cmd := &cobra.Command{
		Use:   "lines <input>",
		Short: "Print the classified lines of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := make([]model.Category, 0, len(only))
			for _, name := range only {
				c, ok := model.ParseCategory(name)
				if !ok {
					return fmt.Errorf("unknown category %q", name)
				}
				categories = append(categories, c)
			}

			ext, err := flags.extractor(args[0])
			if err != nil {
				return err
			}
			doc, warnings, err := ext.Document()
			if err != nil {
				return err
			}
			FormatWarnings(cmd.ErrOrStderr(), warnings)

			opts := render.OutlineOptions{ShowPages: showPages, Categories: categories}
			if plain {
				return render.WriteOutline(cmd.OutOrStdout(), doc, opts)
			}
			FormatOutline(cmd.OutOrStdout(), doc, opts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without styling")
	cmd.Flags().BoolVar(&showPages, "show-pages", false, "Prefix lines with their page number")
	cmd.Flags().StringSliceVar(&only, "category", nil, "Only print these categories (e.g. theorem,proof)")
	flags.register(cmd)

	return cmd
}
