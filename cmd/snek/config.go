package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration snek would run with, after the config file
and the difficulty preset are applied. Use --default to print the built-in
defaults, a good starting point for ~/.snek/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagShowDefault {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}
	data, err := config.Marshal(appCfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
