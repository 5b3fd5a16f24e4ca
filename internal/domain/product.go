package domain

// Availability describes whether a catalog product can be purchased right now.
type Availability string

const (
	AvailabilityAvailable      Availability = "available"
	AvailabilityUnavailable    Availability = "unavailable"
	AvailabilitySubstituteOnly Availability = "substitute-only"
)

// Product is a purchasable item from the externally supplied catalog.
// The catalog owns products and may refresh them at any time; matching always
// runs against an immutable snapshot.
type Product struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Aliases      []string     `json:"aliases,omitempty"`
	UnitPrice    float64      `json:"unitPrice"`
	Availability Availability `json:"availability"`
	SubstituteID string       `json:"substituteId,omitempty"`
}

// IngredientRequest is a single ingredient demanded by a generated meal.
// Ephemeral: created per generation call, never persisted on its own.
type IngredientRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// MatchTier classifies how a product match was derived.
type MatchTier string

const (
	TierExact    MatchTier = "exact"
	TierFuzzy    MatchTier = "fuzzy"
	TierCategory MatchTier = "category"
	TierNone     MatchTier = "none"
)

// MatchResult is the outcome of matching one ingredient against the catalog.
// ProductID is empty when no product matched (none tier). Confidence always
// lies within the band defined for the tier: exact >= 0.95, fuzzy [0.70, 0.95),
// category [0.50, 0.70), none = 0.
type MatchResult struct {
	Ingredient   IngredientRequest `json:"ingredient"`
	ProductID    string            `json:"productId,omitempty"`
	ProductName  string            `json:"productName,omitempty"`
	UnitPrice    float64           `json:"unitPrice,omitempty"`
	Availability Availability      `json:"availability,omitempty"`
	Confidence   float64           `json:"confidence"`
	Tier         MatchTier         `json:"tier"`
	SubstituteID string            `json:"substituteId,omitempty"`
}

// Matched reports whether the result carries a product.
func (r *MatchResult) Matched() bool {
	return r.ProductID != ""
}
