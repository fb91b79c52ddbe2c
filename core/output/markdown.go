package output

import (
	"fmt"
	"io"
	"strings"

	"margin-suggest/core/types"
)

// MarkdownFormatter renders GitHub-flavored markdown
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format implements Formatter
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render implements Formatter
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	var b strings.Builder
	for i, s := range report.Results {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		f.renderOne(&b, s)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *MarkdownFormatter) renderOne(b *strings.Builder, s *types.Suggestions) {
	name := s.Product.Name
	if name == "" {
		name = "Unnamed product"
	}
	cur := currencyOf(s)
	rec := s.Recommendation

	fmt.Fprintf(b, "## %s\n\n", name)
	fmt.Fprintf(b, "Category: `%s` · Total cost: **%s**\n\n", s.Category.Key, money(s.Costs.TotalCost.StringFixed(2), cur))
	fmt.Fprintf(b, "### Recommended: %s %s at %s\n\n", rec.Icon, rec.Name, money(rec.SuggestedPrice.StringFixed(2), cur))
	for _, line := range rec.Reasoning {
		fmt.Fprintf(b, "- %s\n", line)
	}
	b.WriteString("\n")

	b.WriteString("| Strategy | Price | Profit | Margin | ROI | Position | Viability |\n")
	b.WriteString("|---|---:|---:|---:|---:|---|---|\n")
	for _, r := range s.Strategies {
		fmt.Fprintf(b, "| %s %s | %s | %s | %.1f%% | %d%% | %s | %s |\n",
			r.Icon, r.Name, r.SuggestedPrice.StringFixed(2), r.Profit.StringFixed(2),
			r.Margin, r.ROI, r.MarketPosition, r.Viability)
	}
	b.WriteString("\n")

	if f.opts.ShowDetails {
		b.WriteString("| Tier | Multiplier | Price | Margin |\n")
		b.WriteString("|---|---:|---:|---:|\n")
		for _, t := range s.PricingTiers {
			fmt.Fprintf(b, "| %s | %.1fx | %s | %.1f%% |\n", t.Name, t.Multiplier, t.Price.StringFixed(2), t.Margin)
		}
		b.WriteString("\n")

		endings := make([]string, 0, len(s.PriceEndingOptions))
		for _, e := range s.PriceEndingOptions {
			endings = append(endings, fmt.Sprintf("%s `%s`", e.Style, e.Formatted))
		}
		fmt.Fprintf(b, "Price endings: %s\n\n", strings.Join(endings, ", "))
	}

	if len(s.Warnings)+len(s.DataQuality) > 0 {
		b.WriteString("> **Warnings**\n")
		for _, w := range s.Warnings {
			fmt.Fprintf(b, "> - %s (%s)\n", w.Message, w.Severity)
		}
		for _, w := range s.DataQuality {
			fmt.Fprintf(b, "> - %s (data)\n", w.Message)
		}
		b.WriteString("\n")
	}
}
