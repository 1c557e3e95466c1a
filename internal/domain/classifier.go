package domain

import "strings"

// CategoryRule maps a category name to the keywords that select it.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// Classifier classifies services as main offerings or add-ons and derives a
// display category, by case-insensitive substring match against the localized
// service name. The keyword tables are configuration, not computed.
type Classifier struct {
	addOnKeywords    []string
	categories       []CategoryRule
	addOnCategory    string
	fallbackCategory string
}

// Default keyword tables for the Lavadero Lesan price list.
var (
	DefaultAddOnKeywords = []string{"suplemento", "adicional", "extra", "tapicería", "pulido", "pelos"}

	DefaultCategoryRules = []CategoryRule{
		{Name: "Turismos Pequeños", Keywords: []string{"pequeño"}},
		{Name: "Turismos Grandes", Keywords: []string{"grande"}},
		{Name: "Todo Terreno / Monovolumen", Keywords: []string{"terreno", "monovolumen"}},
	}

	DefaultAddOnCategory    = "Servicios Adicionales"
	DefaultFallbackCategory = "Otros"
)

// NewClassifier builds a classifier from explicit keyword tables.
// Empty arguments fall back to the defaults.
func NewClassifier(addOnKeywords []string, categories []CategoryRule, addOnCategory, fallbackCategory string) *Classifier {
	if len(addOnKeywords) == 0 {
		addOnKeywords = DefaultAddOnKeywords
	}
	if len(categories) == 0 {
		categories = DefaultCategoryRules
	}
	if addOnCategory == "" {
		addOnCategory = DefaultAddOnCategory
	}
	if fallbackCategory == "" {
		fallbackCategory = DefaultFallbackCategory
	}

	return &Classifier{
		addOnKeywords:    lowerAll(addOnKeywords),
		categories:       lowerRules(categories),
		addOnCategory:    addOnCategory,
		fallbackCategory: fallbackCategory,
	}
}

// DefaultClassifier returns a classifier with the default keyword tables.
func DefaultClassifier() *Classifier {
	return NewClassifier(nil, nil, "", "")
}

// IsAddOn reports whether the service is an add-on (extra) rather than a
// main offering. Pure and total: no error path.
func (c *Classifier) IsAddOn(s Service) bool {
	name := strings.ToLower(s.Name)
	for _, kw := range c.addOnKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// CategoryOf derives the display category of a service from its name.
// Add-ons fall into the add-on category; anything unmatched into the fallback.
func (c *Classifier) CategoryOf(s Service) string {
	name := strings.ToLower(s.Name)
	for _, rule := range c.categories {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Name
			}
		}
	}
	if c.IsAddOn(s) {
		return c.addOnCategory
	}
	return c.fallbackCategory
}

// Split partitions a catalog into main services and add-ons,
// preserving the input order.
func (c *Classifier) Split(services []Service) (main, addOns []Service) {
	for _, s := range services {
		if c.IsAddOn(s) {
			addOns = append(addOns, s)
		} else {
			main = append(main, s)
		}
	}
	return main, addOns
}

func lowerAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}

func lowerRules(rules []CategoryRule) []CategoryRule {
	out := make([]CategoryRule, len(rules))
	for i, r := range rules {
		out[i] = CategoryRule{Name: r.Name, Keywords: lowerAll(r.Keywords)}
	}
	return out
}
