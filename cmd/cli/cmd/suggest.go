// Package cmd - suggest command
package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"margin-suggest/core/engine"
	"margin-suggest/core/output"
	"margin-suggest/core/types"
	"margin-suggest/core/warnings"
	"margin-suggest/internal/config"
	apperrors "margin-suggest/internal/errors"
	"margin-suggest/internal/logging"
)

var (
	outputFormat string
	showDetails  bool
	strict       bool

	productName     string
	productCategory string
	productDesc     string
	productCurrency string

	preferHighMargin bool
	preferVolume     bool
	seed             uint64
	date             string
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest [file|-]",
	Short: "Suggest prices for one or more products",
	Long: `Compute pricing suggestions.

The input is a JSON product object, or an array of products for a batch.
Use "-" to read from stdin. Without a file the product is built from flags.

Examples:
  margin-suggest suggest --name "Summer Dress" --cost 10 --shipping 2
  margin-suggest suggest --prefer-volume products.json
  margin-suggest suggest --seed 42 --date 2024-03-15 --format json product.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	f := suggestCmd.Flags()
	f.StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	f.BoolVarP(&showDetails, "details", "d", true, "show costs, market, tiers and endings")
	f.BoolVar(&strict, "strict", false, "reject products with negative or missing costs")

	f.StringVar(&productName, "name", "", "product name")
	f.StringVar(&productCategory, "category", "", "product category text")
	f.StringVar(&productDesc, "description", "", "product description")
	f.StringVar(&productCurrency, "currency", "", "product currency (USD, EUR, GBP)")
	f.Float64("cost", 0, "cost price")
	f.Float64("supplier-price", 0, "supplier price")
	f.Float64("price", 0, "current selling price")
	f.Float64("shipping", 0, "shipping cost")

	f.BoolVar(&preferHighMargin, "prefer-high-margin", false, "favor strategies above 40% margin")
	f.BoolVar(&preferVolume, "prefer-volume", false, "favor strategies below 35% margin")
	f.Uint64Var(&seed, "seed", 0, "seed for reproducible market simulation")
	f.StringVar(&date, "date", "", "pin the clock (YYYY-MM-DD or RFC3339)")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	startTime := time.Now()

	products, err := readProducts(cmd, args)
	if err != nil {
		return err
	}
	if strict {
		if err := validateAll(products); err != nil {
			return err
		}
	}

	fixed, err := parseDate(date)
	if err != nil {
		return err
	}
	eng, err := newEngine(func(cfg *config.Config) {
		if seed != 0 {
			cfg.Engine.Seed = seed
		}
		if fixed != "" {
			cfg.Engine.FixedTime = fixed
		}
	})
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	opts := types.Options{PreferHighMargin: preferHighMargin, PreferVolume: preferVolume}
	logging.Info("pricing products", zap.Int("count", len(products)))

	var results []*types.Suggestions
	if len(products) == 1 {
		results = append(results, eng.GetSuggestions(products[0], opts))
	} else {
		results, err = eng.SuggestBatch(ctx, products, opts)
		if err != nil {
			return fmt.Errorf("batch interrupted: %w", err)
		}
	}

	cfg := config.Get()
	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	registry := output.DefaultRegistry(output.Options{
		ShowDetails: showDetails && cfg.Output.ShowDetails,
		NoColor:     cfg.Output.NoColor,
		Verbose:     verbose,
	})
	formatter, err := registry.Get(output.Format(format))
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.Formats())
	}

	report := output.NewReport(engine.Version, results...)
	report.Metadata.Duration = time.Since(startTime).String()
	return formatter.Render(cmd.OutOrStdout(), report)
}

func readProducts(cmd *cobra.Command, args []string) ([]types.Product, error) {
	if len(args) == 0 {
		p, err := productFromFlags(cmd.Flags())
		if err != nil {
			return nil, err
		}
		return []types.Product{p}, nil
	}

	var r io.Reader
	if args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return parseProducts(bufio.NewReader(r))
}

// parseProducts accepts a single JSON object or an array of objects
func parseProducts(r io.Reader) ([]types.Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, apperrors.Input("empty product input")
	}

	if data[0] == '[' {
		var products []types.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, apperrors.Wrap(apperrors.TypeInput, "invalid product list", err)
		}
		if len(products) == 0 {
			return nil, apperrors.Input("product list is empty")
		}
		return products, nil
	}

	var p types.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.Wrap(apperrors.TypeInput, "invalid product", err)
	}
	return []types.Product{p}, nil
}

// productFromFlags only sets amounts whose flags were given, so an omitted
// --cost stays absent rather than zero.
func productFromFlags(flags *pflag.FlagSet) (types.Product, error) {
	p := types.Product{
		Name:        productName,
		Category:    productCategory,
		Description: productDesc,
		Currency:    types.Currency(productCurrency),
	}
	amounts := map[string]*decimal.NullDecimal{
		"cost":           &p.CostPrice,
		"supplier-price": &p.SupplierPrice,
		"price":          &p.Price,
		"shipping":       &p.ShippingCost,
	}
	for name, target := range amounts {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return p, err
		}
		*target = types.Amount(v)
	}
	return p, nil
}

func validateAll(products []types.Product) error {
	for i, p := range products {
		if err := warnings.Validate(p); err != nil {
			return fmt.Errorf("product #%d: %w", i+1, err)
		}
	}
	return nil
}

// parseDate normalizes --date to RFC3339
func parseDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.RFC3339), nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return s, nil
	}
	return "", apperrors.Newf(apperrors.TypeInput, "invalid --date %q, want YYYY-MM-DD or RFC3339", s)
}
