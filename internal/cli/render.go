package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/mdtable"
	"github.com/bjaus/mdtable/internal/preview"
)

func newRenderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a YAML table as Markdown, CSV, or TSV",
		Long: `Render a YAML array of flat maps. Without --headings every key is
used as a column, in order of first appearance. --headings is split on
commas exactly as given; whitespace around names is kept, and an
explicit empty value renders a single empty column.`,
		Args: optionalInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := settingsFrom(ctx)
			log := loggerFrom(ctx)

			data, err := readInput(app.Stdin, args)
			if err != nil {
				return err
			}
			t, err := mdtable.Decode(data)
			if err != nil {
				return err
			}

			headings := s.Headings
			if cmd.Flags().Changed("headings") {
				raw, _ := cmd.Flags().GetString("headings")
				headings = mdtable.SplitHeadings(raw)
			}
			if headings == nil {
				headings = mdtable.Columns(t)
			}
			log.Debug("rendering table", "records", len(t), "columns", len(headings), "format", s.Format)

			if s.Format == mdtable.Markdown && s.Preview && preview.IsTerminal(app.Stdout) {
				md := mdtable.RenderMarkdown(headings, t, s.Options()...)
				return preview.Render(app.Stdout, md, preview.Width(app.Stdout))
			}
			if err := mdtable.Write(app.Stdout, s.Format, headings, t, s.Options()...); err != nil {
				return err
			}
			if s.Format == mdtable.Markdown {
				_, err = fmt.Fprintln(app.Stdout)
			}
			return err
		},
	}

	cmd.Flags().String("headings", "", "comma-separated column headings (default: all keys)")
	cmd.Flags().StringP("format", "f", string(mdtable.Markdown), "output format: markdown|csv|tsv")
	cmd.Flags().String("measure", "chars", "column width measure: chars|cells")
	cmd.Flags().Bool("preview", false, "style Markdown output when writing to a terminal")

	return cmd
}
