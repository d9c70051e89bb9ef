package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/mdtable"
)

func newColumnsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "columns [file|-]",
		Short: "List the columns inferred from a YAML table",
		Args:  optionalInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(app.Stdin, args)
			if err != nil {
				return err
			}
			t, err := mdtable.Decode(data)
			if err != nil {
				return err
			}
			for _, c := range mdtable.Columns(t) {
				if _, err := fmt.Fprintln(app.Stdout, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
