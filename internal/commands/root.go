package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contable-dev/contable/internal/api"
	"github.com/contable-dev/contable/internal/buildinfo"
	"github.com/contable-dev/contable/internal/config"
	"github.com/contable-dev/contable/internal/render"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	baseURL    string
	debug      bool
	output     string
}

// setup resolves configuration, applies flag overrides and builds the
// backend client. Called from RunE so flags are already parsed.
func (o *options) setup() (*api.Client, render.Format, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, "", err
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.debug {
		cfg.Debug = true
	}
	if o.output != "" {
		cfg.Output = o.output
	}

	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return nil, "", err
	}

	client := api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout))
	return client, format, nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "contable",
		Short:   "Console client for an accounting backend",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "contable.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output format: table, json or csv")

	rootCmd.AddCommand(newTercerosCommand(opts))
	rootCmd.AddCommand(newCuentasCommand(opts))
	rootCmd.AddCommand(newTransaccionesCommand(opts))
	rootCmd.AddCommand(newSaldosCommand(opts))
	rootCmd.AddCommand(newPingCommand(opts))

	return rootCmd
}
