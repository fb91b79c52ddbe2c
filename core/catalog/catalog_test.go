package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margin-suggest/core/types"
	apperrors "margin-suggest/internal/errors"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Validate(nil))
	assert.Len(t, c.Categories, 9)
	assert.Len(t, c.Strategies, 5)
	assert.Len(t, c.Tiers, 5)
	assert.Equal(t, []float64{500, 1000, 2000, 5000}, c.ProfitTargets)
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Strategies[0].Name = "changed"
	a.Categories[0].Keywords[0] = "changed"
	b := Default()
	assert.Equal(t, "Aggressive", b.Strategies[0].Name)
	assert.Equal(t, "phone", b.Categories[0].Keywords[0])
}

func TestCloneIsDeep(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Categories[1].Keywords[0] = "changed"
	b.ProfitTargets[0] = 1
	assert.Equal(t, "dress", a.Categories[1].Keywords[0])
	assert.Equal(t, 500.0, a.ProfitTargets[0])
}

func TestLookups(t *testing.T) {
	c := Default()

	entry, ok := c.Category(types.CategoryPet)
	require.True(t, ok)
	assert.Equal(t, types.SaturationLow, entry.Saturation)

	assert.Equal(t, types.CategoryGeneral, c.Profile("unknown").Key)
	assert.Equal(t, 25.0, c.Profile(types.CategoryElectronics).TypicalMargin)

	def, ok := c.Strategy(types.StrategyBalanced)
	require.True(t, ok)
	assert.Equal(t, 40.0, def.TargetMargin.Mid())
	assert.Equal(t, 2.15, def.PriceMultiplier.Mid())

	_, ok = c.Strategy("unknown")
	assert.False(t, ok)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		want   string
	}{
		{"negative surcharge", func(c *Catalog) { c.Surcharges.Returns = -1 }, "surcharges.returns"},
		{"missing general", func(c *Catalog) { c.Categories = c.Categories[:len(c.Categories)-1] }, "required as the fallback"},
		{"duplicate category", func(c *Catalog) { c.Categories = append(c.Categories, c.Categories[0]) }, "duplicate"},
		{"unordered margins", func(c *Catalog) { c.Categories[0].MinViableMargin = 90 }, "minViable <= typical <= premium"},
		{"bad saturation", func(c *Catalog) { c.Categories[0].Saturation = "extreme" }, "unknown saturation"},
		{"zero elasticity", func(c *Catalog) { c.Categories[0].Elasticity = 0 }, "elasticity"},
		{"no strategies", func(c *Catalog) { c.Strategies = nil }, "at least one strategy"},
		{"margin of 100", func(c *Catalog) { c.Strategies[0].TargetMargin.Max = 100 }, "[0, 100)"},
		{"inverted band", func(c *Catalog) { c.Strategies[1].TargetMargin = types.Band{Min: 50, Max: 40} }, "min above max"},
		{"zero multiplier", func(c *Catalog) { c.Strategies[2].PriceMultiplier.Min = 0 }, "multiplier must be positive"},
		{"zero tier", func(c *Catalog) { c.Tiers[0].Multiplier = 0 }, "tier"},
		{"negative target", func(c *Catalog) { c.ProfitTargets[1] = -5 }, "profit target #2"},
		{"ending cents", func(c *Catalog) { c.Endings[0].Cents = 100 }, "cents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			errs := c.Validate(nil)
			require.NotEmpty(t, errs)
			var msgs []string
			for _, err := range errs {
				msgs = append(msgs, err.Error())
			}
			assert.Contains(t, strings.Join(msgs, "\n"), tt.want)
		})
	}
}

func TestValidateCustomRules(t *testing.T) {
	noPremium := func(c *Catalog) []error {
		if _, ok := c.Strategy(types.StrategyPremium); ok {
			return []error{assert.AnError}
		}
		return nil
	}
	assert.Len(t, Default().Validate([]ValidationRule{noPremium}), 1)
}

func TestLoadHCLOverride(t *testing.T) {
	src := `
surcharges {
  processing = 2.9
  platform   = 0
  marketing  = 8
  returns    = 4
}

strategy "steady" {
  name           = "Steady"
  margin_min     = 30
  margin_max     = 40
  multiplier_min = 1.5
  multiplier_max = 2
}

profit_targets = [250, 750]
`
	c, err := Load("override.hcl", []byte(src), FormatHCL)
	require.NoError(t, err)

	assert.Equal(t, Surcharges{Processing: 2.9, Platform: 0, Marketing: 8, Returns: 4}, c.Surcharges)
	require.Len(t, c.Strategies, 1)
	assert.Equal(t, types.StrategyKey("steady"), c.Strategies[0].Key)
	assert.Equal(t, types.Band{Min: 30, Max: 40}, c.Strategies[0].TargetMargin)
	assert.Equal(t, []float64{250, 750}, c.ProfitTargets)
	// untouched sections keep the defaults
	assert.Len(t, c.Categories, 9)
	assert.Len(t, c.Endings, 4)
}

func TestLoadYAMLLowercasesKeywords(t *testing.T) {
	src := `
categories:
  - key: gadgets
    typical_margin: 30
    premium_margin: 45
    min_viable_margin: 15
    saturation: high
    elasticity: 1.4
    keywords: [Drone, "Smart Watch"]
  - key: general
    typical_margin: 35
    premium_margin: 55
    min_viable_margin: 20
    saturation: medium
    elasticity: 1
`
	c, err := Load("override.yaml", []byte(src), FormatYAML)
	require.NoError(t, err)
	require.Len(t, c.Categories, 2)
	assert.Equal(t, []string{"drone", "smart watch"}, c.Categories[0].Keywords)
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	src := `{"strategies":[{"key":"greedy","name":"Greedy","margin_min":90,"margin_max":100,"multiplier_min":2,"multiplier_max":3}]}`
	_, err := Load("override.json", []byte(src), FormatJSON)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeCatalog))

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 1, appErr.Context["problems"])
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	for _, f := range []Format{FormatHCL, FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			_, err := Load("broken", []byte("{{{ not a catalog"), f)
			assert.True(t, apperrors.IsType(err, apperrors.TypeCatalog))
		})
	}
	_, err := Load("x", nil, "toml")
	assert.True(t, apperrors.IsType(err, apperrors.TypeNotFound))
}

func TestEncodeRoundTrip(t *testing.T) {
	want, err := Encode(Default(), FormatJSON)
	require.NoError(t, err)

	for _, f := range []Format{FormatHCL, FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Encode(Default(), f)
			require.NoError(t, err)

			loaded, err := Load("roundtrip."+string(f), data, f)
			require.NoError(t, err)

			got, err := Encode(loaded, FormatJSON)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("profit_targets: [100]\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{100}, c.ProfitTargets)

	_, err = LoadFile(filepath.Join(dir, "missing.hcl"))
	assert.True(t, apperrors.IsType(err, apperrors.TypeCatalog))

	_, err = LoadFile(filepath.Join(dir, "catalog.ini"))
	assert.True(t, apperrors.IsType(err, apperrors.TypeNotFound))
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.hcl":  FormatHCL,
		"a.JSON": FormatJSON,
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}
