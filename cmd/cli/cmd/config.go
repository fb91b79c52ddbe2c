// Package cmd - config commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"margin-suggest/core/ui"
	"margin-suggest/internal/config"
)

const defaultConfigPath = "margin-suggest.json"

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the active configuration to a JSON file",
	Long: `Writes the configuration in effect, defaults plus any --config file,
.env values and MARGIN_* overrides, so it can be edited and passed back with --config.

Examples:
  margin-suggest config init
  MARGIN_SEED=42 margin-suggest config init ci.json --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if !configForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
		}

		cfg := config.Get()
		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor).Success("wrote %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
}
