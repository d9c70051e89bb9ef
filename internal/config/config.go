// Package config resolves CLI settings from defaults, an optional config
// file, MDTABLE_* environment variables, and flags.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bjaus/mdtable"
)

// Option describes one configuration key.
type Option struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns every configuration key with its default.
func GetConfigOptions() []Option {
	return []Option{
		{Key: "format", Default: string(mdtable.Markdown), Comment: "Output format for render: markdown|csv|tsv"},
		{Key: "measure", Default: "chars", Comment: "Column width measure: chars|cells"},
		{Key: "headings", Default: "", Comment: "Comma-separated headings; empty infers every column"},
		{Key: "indent", Default: 2, Comment: "YAML indentation for aggregate output"},
		{Key: "preview", Default: false, Comment: "Render Markdown for the terminal when stdout is a TTY"},
		{Key: "debug", Default: false, Comment: "Enable debug logging"},
		{Key: "log.json", Default: false, Comment: "Emit logs as JSON"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// A config file set on v with SetConfigFile must exist; otherwise
// mdtable.{yaml,toml,json} is looked up in the XDG config dir, ~/.config/mdtable,
// and the working directory.
func Load(_ context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("mdtable")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdtable"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdtable"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("mdtable")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

// Settings is the resolved configuration.
type Settings struct {
	Format   mdtable.Format
	Measure  mdtable.Measure
	Headings []string
	Indent   int
	Preview  bool
	Debug    bool
	LogJSON  bool
}

// FromViper validates and converts the values held by v.
func FromViper(v *viper.Viper) (Settings, error) {
	f, err := mdtable.ParseFormat(v.GetString("format"))
	if err != nil {
		return Settings{}, err
	}
	m, err := mdtable.ParseMeasure(v.GetString("measure"))
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		Format:  f,
		Measure: m,
		Indent:  v.GetInt("indent"),
		Preview: v.GetBool("preview"),
		Debug:   v.GetBool("debug"),
		LogJSON: v.GetBool("log.json"),
	}
	if h := v.GetString("headings"); h != "" {
		s.Headings = mdtable.SplitHeadings(h)
	}
	return s, nil
}

// Options converts the settings into rendering options.
func (s Settings) Options() []mdtable.Option {
	return []mdtable.Option{mdtable.WithMeasure(s.Measure), mdtable.WithIndent(s.Indent)}
}
