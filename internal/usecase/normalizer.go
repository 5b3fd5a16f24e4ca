package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for normalization
var (
	punctuationRegex = regexp.MustCompile(`[^\w\s]`)
	multiSpaceRegex  = regexp.MustCompile(`\s+`)

	// Matches a leading quantity with an optional unit, e.g. "500 g", "2 cups",
	// "1.5kg", "3 pieces of". Applied repeatedly until the name stabilizes.
	leadingQuantityRegex = regexp.MustCompile(
		`^\d+(\.\d+)?\s*(kg|g|grams?|mg|ml|l|liters?|litres?|cups?|tablespoons?|tbsp|teaspoons?|tsp|pieces?|pcs|packs?|tins?|sachets?)?\s*(of\s+)?`,
	)
)

// Normalizer rewrites free-text ingredient names into canonical catalog terms:
// lowercase, trimmed, quantity/unit prefixes stripped, punctuation removed,
// known aliases expanded. Normalize is idempotent.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer creates a normalizer with the given alias table (informal name
// -> canonical catalog term). A nil table falls back to the built-in defaults.
func NewNormalizer(aliases map[string]string) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	table := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		table[strings.ToLower(strings.TrimSpace(alias))] = strings.ToLower(strings.TrimSpace(canonical))
	}
	return &Normalizer{aliases: table}
}

// Normalize returns the canonical form of a raw ingredient name. Empty input
// normalizes to the empty string; callers treat that as invalid.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = punctuationRegex.ReplaceAllString(s, " ")

	// Strip leading quantity/unit tokens; repeat so "2 cups 500 g rice" and the
	// already-normalized output both land on the same string.
	for {
		stripped := leadingQuantityRegex.ReplaceAllString(s, "")
		stripped = strings.TrimSpace(stripped)
		if stripped == s || stripped == "" {
			s = stripped
			break
		}
		s = stripped
	}

	s = multiSpaceRegex.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if canonical, ok := n.aliases[s]; ok {
		return canonical
	}
	return s
}

// DefaultAliases maps local and informal ingredient names to canonical catalog
// terms. Keys and values are matched case-insensitively.
func DefaultAliases() map[string]string {
	return map[string]string{
		// Grains
		"long grain rice": "rice",
		"white rice":      "rice",
		"jollof rice":     "parboiled rice",
		"pap flour":       "cornmeal",
		"corn flour":      "cornmeal",
		"cornmeal pap":    "cornmeal",
		"gari":            "garri",
		"millet flour":    "millet",

		// Proteins
		"poultry":      "chicken",
		"cow meat":     "beef",
		"seafood":      "fish",
		"frozen fish":  "fish",
		"dried shrimp": "crayfish",
		"shrimp":       "crayfish",
		"dried fish":   "stockfish",
		"chicken eggs": "eggs",

		// Legumes
		"black eyed beans": "beans",
		"kidney beans":     "beans",
		"red lentils":      "lentils",
		"split peas":       "peas",

		// Vegetables
		"fresh tomato":  "tomato",
		"tomatoes":      "tomato",
		"white onion":   "onion",
		"onions":        "onion",
		"hot pepper":    "pepper",
		"scotch bonnet": "pepper",
		"chilli":        "pepper",
		"green pepper":  "bell pepper",
		"sweet pepper":  "bell pepper",
		"leafy greens":  "spinach",
		"carrots":       "carrot",
		"cucumbers":     "cucumber",

		// Oils and seasonings
		"red oil":       "palm oil",
		"cooking oil":   "vegetable oil",
		"tomato puree":  "tomato paste",
		"melon seeds":   "egusi",
		"egusi seeds":   "egusi",
		"table salt":    "salt",
		"garlic cloves": "garlic",
		"ginger root":   "ginger",
		"curry":         "curry powder",
		"dried thyme":   "thyme",
	}
}

// DefaultCategoryKeywords maps a product category to the ingredient-name
// keywords that hint at it. Used by the category matching tier.
func DefaultCategoryKeywords() map[string][]string {
	return map[string][]string{
		"grains":     {"rice", "cornmeal", "garri", "millet", "flour", "pap"},
		"proteins":   {"chicken", "beef", "fish", "egg", "crayfish", "stockfish", "meat"},
		"legumes":    {"beans", "lentils", "peas"},
		"vegetables": {"tomato", "onion", "pepper", "spinach", "carrot", "cucumber", "okra"},
		"oils":       {"oil", "palm"},
		"seasonings": {"salt", "garlic", "ginger", "curry", "thyme", "paste", "seasoning", "spice"},
		"dairy":      {"milk", "cheese", "butter", "yogurt"},
	}
}
