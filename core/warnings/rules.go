// Package warnings flags risks in a recommendation and quality problems in the input.
package warnings

import (
	"fmt"

	"margin-suggest/core/types"
)

// LowMarginThreshold is the margin, in percent, under which a recommendation is flagged.
const LowMarginThreshold = 20

// Rule inspects a recommendation in its market and may return a warning
type Rule func(rec types.Recommendation, market types.MarketSnapshot) (types.Warning, bool)

// DefaultRules are evaluated independently; several may fire together.
func DefaultRules() []Rule {
	return []Rule{lowMargin, overpriced, highCompetition}
}

// Generate runs the default rules
func Generate(rec types.Recommendation, market types.MarketSnapshot) []types.Warning {
	return Evaluate(DefaultRules(), rec, market)
}

// Evaluate runs rules in order and collects every warning raised
func Evaluate(rules []Rule, rec types.Recommendation, market types.MarketSnapshot) []types.Warning {
	out := []types.Warning{}
	for _, rule := range rules {
		if w, ok := rule(rec, market); ok {
			out = append(out, w)
		}
	}
	return out
}

func lowMargin(rec types.Recommendation, _ types.MarketSnapshot) (types.Warning, bool) {
	if rec.Margin >= LowMarginThreshold {
		return types.Warning{}, false
	}
	return types.Warning{
		Type:     types.WarningLowMargin,
		Severity: types.SeverityHigh,
		Message:  fmt.Sprintf("Margin of %.1f%% is under %d%%, fees and returns can wipe out the profit", rec.Margin, LowMarginThreshold),
	}, true
}

func overpriced(rec types.Recommendation, market types.MarketSnapshot) (types.Warning, bool) {
	if rec.MarketPosition != types.PositionPremium || market.Saturation != types.SaturationHigh {
		return types.Warning{}, false
	}
	return types.Warning{
		Type:     types.WarningOverpriced,
		Severity: types.SeverityMedium,
		Message:  "Priced above competitors on a saturated market, conversion may suffer",
	}, true
}

func highCompetition(_ types.Recommendation, market types.MarketSnapshot) (types.Warning, bool) {
	if market.Saturation != types.SaturationHigh {
		return types.Warning{}, false
	}
	return types.Warning{
		Type:     types.WarningHighCompetition,
		Severity: types.SeverityLow,
		Message:  "Crowded category, stand out with bundles, branding or faster shipping",
	}, true
}
