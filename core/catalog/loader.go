// Package catalog - File loading
// Overrides are read from HCL, JSON or YAML. A section present in the file
// replaces the built-in section wholesale; absent sections keep the defaults.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"gopkg.in/yaml.v3"

	"margin-suggest/core/types"
	apperrors "margin-suggest/internal/errors"
)

// Format is a catalog file encoding
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", apperrors.NotFound("catalog format for", path)
	}
}

type fileCatalog struct {
	Surcharges    *fileSurcharges `hcl:"surcharges,block" json:"surcharges,omitempty" yaml:"surcharges,omitempty"`
	Categories    []fileCategory  `hcl:"category,block" json:"categories,omitempty" yaml:"categories,omitempty"`
	Strategies    []fileStrategy  `hcl:"strategy,block" json:"strategies,omitempty" yaml:"strategies,omitempty"`
	Tiers         []fileTier      `hcl:"tier,block" json:"tiers,omitempty" yaml:"tiers,omitempty"`
	Endings       []fileEnding    `hcl:"ending,block" json:"endings,omitempty" yaml:"endings,omitempty"`
	ProfitTargets []float64       `hcl:"profit_targets,optional" json:"profit_targets,omitempty" yaml:"profit_targets,omitempty"`
}

type fileSurcharges struct {
	Processing float64 `hcl:"processing" json:"processing" yaml:"processing"`
	Platform   float64 `hcl:"platform" json:"platform" yaml:"platform"`
	Marketing  float64 `hcl:"marketing" json:"marketing" yaml:"marketing"`
	Returns    float64 `hcl:"returns" json:"returns" yaml:"returns"`
}

type fileCategory struct {
	Key             string   `hcl:"key,label" json:"key" yaml:"key"`
	TypicalMargin   float64  `hcl:"typical_margin" json:"typical_margin" yaml:"typical_margin"`
	PremiumMargin   float64  `hcl:"premium_margin" json:"premium_margin" yaml:"premium_margin"`
	MinViableMargin float64  `hcl:"min_viable_margin" json:"min_viable_margin" yaml:"min_viable_margin"`
	Saturation      string   `hcl:"saturation" json:"saturation" yaml:"saturation"`
	Elasticity      float64  `hcl:"elasticity" json:"elasticity" yaml:"elasticity"`
	Keywords        []string `hcl:"keywords,optional" json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

type fileStrategy struct {
	Key           string  `hcl:"key,label" json:"key" yaml:"key"`
	Name          string  `hcl:"name" json:"name" yaml:"name"`
	Description   string  `hcl:"description,optional" json:"description,omitempty" yaml:"description,omitempty"`
	Icon          string  `hcl:"icon,optional" json:"icon,omitempty" yaml:"icon,omitempty"`
	MarginMin     float64 `hcl:"margin_min" json:"margin_min" yaml:"margin_min"`
	MarginMax     float64 `hcl:"margin_max" json:"margin_max" yaml:"margin_max"`
	MultiplierMin float64 `hcl:"multiplier_min" json:"multiplier_min" yaml:"multiplier_min"`
	MultiplierMax float64 `hcl:"multiplier_max" json:"multiplier_max" yaml:"multiplier_max"`
}

type fileTier struct {
	Name        string  `hcl:"name,label" json:"name" yaml:"name"`
	Multiplier  float64 `hcl:"multiplier" json:"multiplier" yaml:"multiplier"`
	MarginLabel string  `hcl:"margin_label,optional" json:"margin_label,omitempty" yaml:"margin_label,omitempty"`
	Description string  `hcl:"description,optional" json:"description,omitempty" yaml:"description,omitempty"`
}

type fileEnding struct {
	Style string `hcl:"style,label" json:"style" yaml:"style"`
	Label string `hcl:"label,optional" json:"label,omitempty" yaml:"label,omitempty"`
	Cents int64  `hcl:"cents" json:"cents" yaml:"cents"`
}

// LoadFile reads an override file on top of Default() and validates the result.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Catalog("read "+path, err)
	}
	return Load(path, data, format)
}

// Load decodes src in the given format on top of Default() and validates the result.
// filename is only used in diagnostics.
func Load(filename string, src []byte, format Format) (*Catalog, error) {
	var fc fileCatalog
	switch format {
	case FormatHCL:
		if err := hclsimple.Decode(ensureExt(filename, ".hcl"), src, nil, &fc); err != nil {
			return nil, apperrors.Catalog("decode "+filename, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(src, &fc); err != nil {
			return nil, apperrors.Catalog("decode "+filename, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(src, &fc); err != nil {
			return nil, apperrors.Catalog("decode "+filename, err)
		}
	default:
		return nil, apperrors.NotFound("catalog format", string(format))
	}

	c := Default()
	fc.applyTo(c)

	if errs := c.Validate(nil); len(errs) > 0 {
		return nil, apperrors.Catalog("invalid catalog "+filename, errors.Join(errs...)).
			WithContext("problems", len(errs))
	}
	return c, nil
}

// Encode writes the catalog in the given format.
func Encode(c *Catalog, format Format) ([]byte, error) {
	fc := toFile(c)
	switch format {
	case FormatHCL:
		f := hclwrite.NewEmptyFile()
		gohcl.EncodeIntoBody(fc, f.Body())
		return f.Bytes(), nil
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(fc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(fc)
	default:
		return nil, apperrors.NotFound("catalog format", string(format))
	}
}

func (fc *fileCatalog) applyTo(c *Catalog) {
	if fc.Surcharges != nil {
		c.Surcharges = Surcharges{
			Processing: fc.Surcharges.Processing,
			Platform:   fc.Surcharges.Platform,
			Marketing:  fc.Surcharges.Marketing,
			Returns:    fc.Surcharges.Returns,
		}
	}
	if len(fc.Categories) > 0 {
		c.Categories = make([]CategoryEntry, 0, len(fc.Categories))
		for _, fcat := range fc.Categories {
			c.Categories = append(c.Categories, CategoryEntry{
				CategoryProfile: profile(types.CategoryKey(fcat.Key), fcat.TypicalMargin, fcat.PremiumMargin, fcat.MinViableMargin),
				Keywords:        lowerAll(fcat.Keywords),
				Saturation:      types.Saturation(fcat.Saturation),
				Elasticity:      fcat.Elasticity,
			})
		}
	}
	if len(fc.Strategies) > 0 {
		c.Strategies = make([]types.StrategyDefinition, 0, len(fc.Strategies))
		for _, fs := range fc.Strategies {
			c.Strategies = append(c.Strategies, types.StrategyDefinition{
				Key:             types.StrategyKey(fs.Key),
				Name:            fs.Name,
				Description:     fs.Description,
				Icon:            fs.Icon,
				TargetMargin:    types.Band{Min: fs.MarginMin, Max: fs.MarginMax},
				PriceMultiplier: types.Band{Min: fs.MultiplierMin, Max: fs.MultiplierMax},
			})
		}
	}
	if len(fc.Tiers) > 0 {
		c.Tiers = make([]TierDefinition, 0, len(fc.Tiers))
		for _, ft := range fc.Tiers {
			c.Tiers = append(c.Tiers, TierDefinition(ft))
		}
	}
	if len(fc.Endings) > 0 {
		c.Endings = make([]EndingDefinition, 0, len(fc.Endings))
		for _, fe := range fc.Endings {
			c.Endings = append(c.Endings, EndingDefinition(fe))
		}
	}
	if len(fc.ProfitTargets) > 0 {
		c.ProfitTargets = append([]float64(nil), fc.ProfitTargets...)
	}
}

func toFile(c *Catalog) *fileCatalog {
	fc := &fileCatalog{
		Surcharges: &fileSurcharges{
			Processing: c.Surcharges.Processing,
			Platform:   c.Surcharges.Platform,
			Marketing:  c.Surcharges.Marketing,
			Returns:    c.Surcharges.Returns,
		},
		ProfitTargets: append([]float64(nil), c.ProfitTargets...),
	}
	for _, entry := range c.Categories {
		fc.Categories = append(fc.Categories, fileCategory{
			Key:             string(entry.Key),
			TypicalMargin:   entry.TypicalMargin,
			PremiumMargin:   entry.PremiumMargin,
			MinViableMargin: entry.MinViableMargin,
			Saturation:      string(entry.Saturation),
			Elasticity:      entry.Elasticity,
			Keywords:        append([]string{}, entry.Keywords...),
		})
	}
	for _, def := range c.Strategies {
		fc.Strategies = append(fc.Strategies, fileStrategy{
			Key:           string(def.Key),
			Name:          def.Name,
			Description:   def.Description,
			Icon:          def.Icon,
			MarginMin:     def.TargetMargin.Min,
			MarginMax:     def.TargetMargin.Max,
			MultiplierMin: def.PriceMultiplier.Min,
			MultiplierMax: def.PriceMultiplier.Max,
		})
	}
	for _, tier := range c.Tiers {
		fc.Tiers = append(fc.Tiers, fileTier(tier))
	}
	for _, ending := range c.Endings {
		fc.Endings = append(fc.Endings, fileEnding(ending))
	}
	return fc
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}

func ensureExt(name, ext string) string {
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}
