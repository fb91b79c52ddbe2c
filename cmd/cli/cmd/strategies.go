// Package cmd - strategies and categories commands
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"margin-suggest/core/ui"
	"margin-suggest/internal/config"
)

var listFormat string

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List pricing strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(nil)
		if err != nil {
			return err
		}
		defs := eng.GetStrategies()
		if listFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), defs)
		}

		w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
		table := w.NewTable("Strategy", "Key", "Target margin", "Multiplier", "Description")
		for _, d := range defs {
			table.AddRow(
				fmt.Sprintf("%s %s", d.Icon, d.Name),
				string(d.Key),
				fmt.Sprintf("%g-%g%%", d.TargetMargin.Min, d.TargetMargin.Max),
				fmt.Sprintf("%gx-%gx", d.PriceMultiplier.Min, d.PriceMultiplier.Max),
				d.Description,
			)
		}
		table.Render()
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List category margin benchmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(nil)
		if err != nil {
			return err
		}
		profiles := eng.Categories()
		if listFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), profiles)
		}

		cat := eng.Catalog()
		w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
		table := w.NewTable("Category", "Min viable", "Typical", "Premium", "Saturation", "Keywords")
		for _, p := range profiles {
			entry, _ := cat.Category(p.Key)
			table.AddRow(
				string(p.Key),
				fmt.Sprintf("%g%%", p.MinViableMargin),
				fmt.Sprintf("%g%%", p.TypicalMargin),
				fmt.Sprintf("%g%%", p.PremiumMargin),
				string(entry.Saturation),
				fmt.Sprint(len(entry.Keywords)),
			)
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(categoriesCmd)

	strategiesCmd.Flags().StringVarP(&listFormat, "format", "f", "cli", "output format (cli, json)")
	categoriesCmd.Flags().StringVarP(&listFormat, "format", "f", "cli", "output format (cli, json)")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
