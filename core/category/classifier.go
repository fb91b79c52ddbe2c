// Package category maps product text to a commerce category by keyword.
package category

import (
	"regexp"

	"margin-suggest/core/catalog"
	"margin-suggest/core/types"
)

// Classifier detects categories from the catalog's keyword lists
type Classifier struct {
	categories []compiledCategory
}

type compiledCategory struct {
	key      types.CategoryKey
	keywords []compiledKeyword
}

type compiledKeyword struct {
	word    string
	pattern *regexp.Regexp
}

// NewClassifier creates a classifier over the catalog categories, in declaration order.
// Keywords match whole words only, with an optional plural "s" or "es".
func NewClassifier(c *catalog.Catalog) *Classifier {
	cl := &Classifier{categories: make([]compiledCategory, 0, len(c.Categories))}
	for _, entry := range c.Categories {
		cc := compiledCategory{key: entry.Key}
		for _, kw := range entry.Keywords {
			if kw == "" {
				continue
			}
			cc.keywords = append(cc.keywords, compiledKeyword{word: kw, pattern: keywordPattern(kw)})
		}
		cl.categories = append(cl.categories, cc)
	}
	return cl
}

// keywordPattern anchors kw between non-letters. Go's \b is ASCII-only, which
// would break keywords ending in accented letters like "beauté".
func keywordPattern(kw string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(kw) + `(?:e?s)?(?:[^\p{L}\p{N}]|$)`)
}

// Detect returns the first category, in declaration order, with a keyword present
// in the product's name, category and description. Nothing matching means general.
func (c *Classifier) Detect(p types.Product) types.CategoryKey {
	key, _ := c.DetectWithKeyword(p)
	return key
}

// DetectWithKeyword also reports which keyword decided the category.
func (c *Classifier) DetectWithKeyword(p types.Product) (types.CategoryKey, string) {
	text := p.SearchText()
	for _, cat := range c.categories {
		for _, kw := range cat.keywords {
			if kw.pattern.MatchString(text) {
				return cat.key, kw.word
			}
		}
	}
	return types.CategoryGeneral, ""
}
