package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"margin-suggest/core/types"
	"margin-suggest/core/ui"
)

// CLIFormatter renders colored terminal tables
type CLIFormatter struct {
	opts Options
}

// NewCLIFormatter creates a terminal formatter
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{opts: opts}
}

// Format implements Formatter
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render implements Formatter
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	if f.opts.Verbose {
		out.SetVerbosity(2)
	}
	for _, s := range report.Results {
		f.renderOne(out, s)
	}
	if len(report.Results) > 1 {
		out.Println("")
		out.Info("%d products priced", len(report.Results))
	}
	return nil
}

func (f *CLIFormatter) renderOne(out *ui.Writer, s *types.Suggestions) {
	name := s.Product.Name
	if name == "" {
		name = "Unnamed product"
	}
	cur := currencyOf(s)
	out.Header(fmt.Sprintf("%s (%s)", name, s.Category.Key))
	out.Debug("input %s computed %s", s.InputHash, s.Timestamp.Format(time.RFC3339))
	out.Debug("benchmarks: typical %.0f%%, premium %.0f%%, minimum viable %.0f%%",
		s.Category.TypicalMargin, s.Category.PremiumMargin, s.Category.MinViableMargin)

	rec := s.Recommendation
	summary := out.NewPriceSummary()
	summary.Strategy = fmt.Sprintf("%s %s", rec.Icon, rec.Name)
	summary.Price = money(rec.SuggestedPrice.StringFixed(2), cur)
	summary.Profit = money(rec.Profit.StringFixed(2), cur)
	summary.Margin = rec.Margin
	summary.Viability = string(rec.Viability)
	summary.Warnings = len(s.Warnings) + len(s.DataQuality)
	summary.Render()
	out.Println("")

	for _, line := range rec.Reasoning {
		out.Println("  • %s", line)
	}
	out.Println("")

	out.SubHeader("Strategies")
	table := out.NewTable("Strategy", "Price", "Range", "Profit", "Margin", "ROI", "Position", "Viability")
	for _, r := range s.Strategies {
		table.AddRow(
			fmt.Sprintf("%s %s", r.Icon, r.Name),
			r.SuggestedPrice.StringFixed(2),
			r.PriceRange.Min.StringFixed(2)+" - "+r.PriceRange.Max.StringFixed(2),
			r.Profit.StringFixed(2),
			fmt.Sprintf("%.1f%%", r.Margin),
			fmt.Sprintf("%d%%", r.ROI),
			string(r.MarketPosition),
			string(r.Viability),
		)
	}
	table.Render()
	out.Println("")

	if f.opts.ShowDetails {
		f.renderDetails(out, s, cur)
	}

	for _, w := range s.Warnings {
		out.Warning("[%s] %s", w.Severity, w.Message)
	}
	for _, w := range s.DataQuality {
		out.Warning("[data] %s", w.Message)
	}
}

func (f *CLIFormatter) renderDetails(out *ui.Writer, s *types.Suggestions, cur types.Currency) {
	out.SubHeader("Costs")
	costs := out.NewTable("Component", "Amount")
	costs.AddRow("Product", s.Costs.ProductCost.StringFixed(2))
	costs.AddRow("Shipping", s.Costs.ShippingCost.StringFixed(2))
	costs.AddRow("Processing fee", s.Costs.ProcessingFee.StringFixed(2))
	costs.AddRow("Platform fee", s.Costs.PlatformFee.StringFixed(2))
	costs.AddRow("Marketing", s.Costs.MarketingAllocation.StringFixed(2))
	costs.AddRow("Returns", s.Costs.ReturnAllowance.StringFixed(2))
	costs.AddRow("Total", money(s.Costs.TotalCost.StringFixed(2), cur))
	costs.Render()
	out.Println("")

	m := s.Market
	out.SubHeader("Market")
	out.Println("  Competitors: %s - %s (avg %s, %d sampled)",
		m.CompetitorPrices.Low.StringFixed(2), m.CompetitorPrices.High.StringFixed(2),
		m.CompetitorPrices.Average.StringFixed(2), m.CompetitorPrices.SampleSize)
	out.Println("  Saturation: %s, demand %.1f, season %s, elasticity %.1f, stance %s",
		m.Saturation, m.DemandScore, m.Seasonality, m.PriceElasticity, m.RecommendedPosition)
	out.Println("")

	out.SubHeader("Pricing tiers")
	tiers := out.NewTable("Tier", "Multiplier", "Price", "Margin")
	for _, t := range s.PricingTiers {
		tiers.AddRow(t.Name, fmt.Sprintf("%.1fx", t.Multiplier), t.Price.StringFixed(2), fmt.Sprintf("%.1f%%", t.Margin))
	}
	tiers.Render()
	out.Println("")

	p := s.Profitability
	out.SubHeader(fmt.Sprintf("Profitability at %s", money(p.SellingPrice.StringFixed(2), cur)))
	targets := out.NewTable("Monthly goal", "Units", "Per day", "Reachable")
	for _, t := range p.Targets {
		targets.AddRow(t.MonthlyProfit.StringFixed(0), fmt.Sprint(t.UnitsNeeded), fmt.Sprint(t.DailySales), yesNo(t.Achievable))
	}
	targets.Render()
	out.Println("  Annual potential at %d sales/day: %s", p.AssumedDailySales, money(p.AnnualPotential.StringFixed(2), cur))
	out.Println("")

	endings := make([]string, 0, len(s.PriceEndingOptions))
	for _, e := range s.PriceEndingOptions {
		endings = append(endings, fmt.Sprintf("%s %s", e.Style, e.Formatted))
	}
	out.SubHeader("Price endings")
	out.Println("  %s", strings.Join(endings, " · "))
	out.Println("")
}

func currencyOf(s *types.Suggestions) types.Currency {
	if s.Costs.Currency != "" {
		return s.Costs.Currency
	}
	return types.CurrencyUSD
}

func money(amount string, c types.Currency) string {
	return amount + " " + string(c)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
