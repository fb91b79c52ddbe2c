// Package catalog - Catalog validation
// Rejects tables the pricing algorithms cannot evaluate.
package catalog

import (
	"fmt"

	"margin-suggest/core/types"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*Catalog) []error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateSurcharges,
		validateCategories,
		validateStrategies,
		validateTiers,
		validateTargets,
		validateEndings,
	}
}

// Validate checks the catalog against rules; nil rules means the defaults.
func (c *Catalog) Validate(rules []ValidationRule) []error {
	if rules == nil {
		rules = DefaultValidationRules()
	}
	var errs []error
	for _, rule := range rules {
		errs = append(errs, rule(c)...)
	}
	return errs
}

func validateSurcharges(c *Catalog) []error {
	var errs []error
	rates := map[string]float64{
		"processing": c.Surcharges.Processing,
		"platform":   c.Surcharges.Platform,
		"marketing":  c.Surcharges.Marketing,
		"returns":    c.Surcharges.Returns,
	}
	for _, name := range []string{"processing", "platform", "marketing", "returns"} {
		if rates[name] < 0 {
			errs = append(errs, fmt.Errorf("surcharges.%s: must not be negative", name))
		}
	}
	return errs
}

func validateCategories(c *Catalog) []error {
	var errs []error
	seen := make(map[types.CategoryKey]bool)
	for _, entry := range c.Categories {
		prefix := fmt.Sprintf("category %q", entry.Key)
		if entry.Key == "" {
			errs = append(errs, fmt.Errorf("category: empty key"))
			continue
		}
		if seen[entry.Key] {
			errs = append(errs, fmt.Errorf("%s: duplicate", prefix))
		}
		seen[entry.Key] = true

		if !(entry.MinViableMargin <= entry.TypicalMargin && entry.TypicalMargin <= entry.PremiumMargin) {
			errs = append(errs, fmt.Errorf("%s: margins must satisfy minViable <= typical <= premium", prefix))
		}
		switch entry.Saturation {
		case types.SaturationLow, types.SaturationMedium, types.SaturationHigh:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown saturation %q", prefix, entry.Saturation))
		}
		if entry.Elasticity <= 0 {
			errs = append(errs, fmt.Errorf("%s: elasticity must be positive", prefix))
		}
	}
	if !seen[types.CategoryGeneral] {
		errs = append(errs, fmt.Errorf("category %q is required as the fallback", types.CategoryGeneral))
	}
	return errs
}

func validateStrategies(c *Catalog) []error {
	var errs []error
	if len(c.Strategies) == 0 {
		return []error{fmt.Errorf("at least one strategy is required")}
	}
	seen := make(map[types.StrategyKey]bool)
	for _, def := range c.Strategies {
		prefix := fmt.Sprintf("strategy %q", def.Key)
		if def.Key == "" {
			errs = append(errs, fmt.Errorf("strategy: empty key"))
			continue
		}
		if seen[def.Key] {
			errs = append(errs, fmt.Errorf("%s: duplicate", prefix))
		}
		seen[def.Key] = true

		if def.TargetMargin.Min > def.TargetMargin.Max {
			errs = append(errs, fmt.Errorf("%s: target margin min above max", prefix))
		}
		if def.TargetMargin.Min < 0 || def.TargetMargin.Max >= 100 {
			errs = append(errs, fmt.Errorf("%s: target margin must lie in [0, 100)", prefix))
		}
		if def.PriceMultiplier.Min > def.PriceMultiplier.Max {
			errs = append(errs, fmt.Errorf("%s: price multiplier min above max", prefix))
		}
		if def.PriceMultiplier.Min <= 0 {
			errs = append(errs, fmt.Errorf("%s: price multiplier must be positive", prefix))
		}
	}
	return errs
}

func validateTiers(c *Catalog) []error {
	var errs []error
	for _, tier := range c.Tiers {
		if tier.Name == "" {
			errs = append(errs, fmt.Errorf("tier: empty name"))
		}
		if tier.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("tier %q: multiplier must be positive", tier.Name))
		}
	}
	return errs
}

func validateTargets(c *Catalog) []error {
	var errs []error
	for i, target := range c.ProfitTargets {
		if target <= 0 {
			errs = append(errs, fmt.Errorf("profit target #%d: must be positive", i+1))
		}
	}
	return errs
}

func validateEndings(c *Catalog) []error {
	var errs []error
	for _, ending := range c.Endings {
		if ending.Cents < 0 || ending.Cents > 99 {
			errs = append(errs, fmt.Errorf("ending %q: cents must lie in [0, 99]", ending.Style))
		}
	}
	return errs
}
