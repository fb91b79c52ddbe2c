// Package cmd provides the CLI commands for margin-suggest.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"margin-suggest/core/engine"
	"margin-suggest/internal/config"
	"margin-suggest/internal/logging"
)

var (
	cfgFile     string
	envFile     string
	catalogFile string
	verbose     bool
	noColor     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "margin-suggest",
	Short: "Suggest selling prices and margins for dropshipping products",
	Long: `margin-suggest prices a product under several strategies, recommends one
and projects tiers, profitability and price endings.

Examples:
  margin-suggest suggest --name "Summer Dress" --cost 10 --shipping 2
  margin-suggest suggest products.json --format json
  cat product.json | margin-suggest suggest -
  margin-suggest strategies`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with MARGIN_* overrides")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog override file (.hcl, .json, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg := config.Get()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.LoadEnv(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}
	if catalogFile != "" {
		cfg.Engine.CatalogPath = catalogFile
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newEngine builds the engine from the active configuration after applying
// per-command overrides to a copy of it.
func newEngine(override func(*config.Config)) (*engine.Engine, error) {
	cfg := *config.Get()
	if override != nil {
		override(&cfg)
	}
	logging.Debug("building engine",
		zap.String("catalog", cfg.Engine.CatalogPath),
		zap.Uint64("seed", cfg.Engine.Seed),
		zap.String("fixed_time", cfg.Engine.FixedTime),
	)
	return engine.NewFromConfig(&cfg, logging.Named("engine"))
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "margin-suggest version %s\n", engine.Version)
	},
}
