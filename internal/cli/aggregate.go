package cli

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/mdtable"
)

func newAggregateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate [name=]file...",
		Short: "Collect YAML tables into one YAML document",
		Long: `Load each file as a table named after the file (or the name given
before "="). Files that fail to load are skipped with a warning. The
remaining tables are written as a mapping from name to table, or as a bare
table when only one loads.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return userError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := settingsFrom(ctx)

			data, err := mdtable.AggregateIter(loadOutcomes(ctx, args, loggerFrom(ctx)), s.Options()...)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err = app.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().Int("indent", 2, "YAML indentation")

	return cmd
}

// loadOutcomes yields one outcome per source, loading lazily. Sources that
// fail to read or decode yield an errored outcome.
func loadOutcomes(ctx context.Context, sources []string, log *slog.Logger) iter.Seq[mdtable.Outcome] {
	return func(yield func(mdtable.Outcome) bool) {
		for _, src := range sources {
			if ctx.Err() != nil {
				return
			}
			name, path := splitSource(src)
			out := loadOutcome(name, path)
			if !out.OK() {
				log.Warn("dropping table", "name", name, "path", path, "error", out.Err)
			} else {
				log.Debug("loaded table", "name", name, "records", len(out.Table))
			}
			if !yield(out) {
				return
			}
		}
	}
}

func loadOutcome(name, path string) mdtable.Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return mdtable.Errored(name, fmt.Errorf("read %s: %w", path, err))
	}
	t, err := mdtable.Decode(data)
	if err != nil {
		return mdtable.Errored(name, err)
	}
	return mdtable.Named(name, t)
}

// splitSource parses "name=path". Without a name the file's base name,
// minus its extension, is used.
func splitSource(src string) (name, path string) {
	if n, p, ok := strings.Cut(src, "="); ok && n != "" {
		return n, p
	}
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)), src
}
