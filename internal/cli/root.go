package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bjaus/mdtable/internal/config"
	"github.com/bjaus/mdtable/internal/logging"
)

func newRootCmd(app *App) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "mdtable",
		Short:         "Render YAML tables as fixed-width Markdown",
		Long:          "Render a YAML array of flat maps as a centered Markdown table, or collect several YAML tables into one document.",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, map[string]string{"log-json": "log.json"})
			s, err := config.FromViper(v)
			if err != nil {
				return userError{err}
			}

			log := logging.New(app.Stderr, s.Debug, s.LogJSON)
			log.Debug("configuration loaded",
				"file", v.ConfigFileUsed(),
				"format", s.Format,
				"measure", s.Measure,
				"headings", s.Headings,
			)
			cmd.SetContext(withRuntime(cmd.Context(), s, log))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newColumnsCmd(app))
	cmd.AddCommand(newAggregateCmd(app))

	return cmd
}
