// Package cmd - catalog commands
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"margin-suggest/core/catalog"
	"margin-suggest/core/ui"
	"margin-suggest/internal/config"
)

var dumpFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate pricing tables",
	Long: `The catalog holds category benchmarks, keyword lists, strategy bands,
surcharge rates, pricing tiers, profit targets and price endings.

Override files replace whole sections of the built-in catalog.

Examples:
  margin-suggest catalog dump --format hcl > catalog.hcl
  margin-suggest catalog validate catalog.hcl
  margin-suggest --catalog catalog.hcl suggest --cost 10`,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog override file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
		c, err := catalog.LoadFile(args[0])
		if err != nil {
			w.Error("%s", err)
			return err
		}
		w.Success("%s is valid: %d categories, %d strategies, %d tiers",
			args[0], len(c.Categories), len(c.Strategies), len(c.Tiers))
		return nil
	},
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(nil)
		if err != nil {
			return err
		}
		format := catalog.Format(dumpFormat)
		switch format {
		case catalog.FormatHCL, catalog.FormatJSON, catalog.FormatYAML:
		default:
			return errors.New("unsupported catalog format " + dumpFormat)
		}
		data, err := catalog.Encode(eng.Catalog(), format)
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogDumpCmd)

	catalogDumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "hcl", "output format (hcl, json, yaml)")
}
