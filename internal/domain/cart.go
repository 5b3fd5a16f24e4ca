package domain

// Skip reasons for ingredients that could not be added to the cart.
const (
	SkipReasonNoMatch     = "no_match"
	SkipReasonUnavailable = "unavailable"
)

// CartLineItem is a priced cart entry derived from an available match.
type CartLineItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Ingredient  string  `json:"ingredient"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// SkippedItem records an ingredient that was not added, with the reason.
type SkippedItem struct {
	Ingredient string `json:"ingredient"`
	Reason     string `json:"reason"`
}

// CartSummary aggregates line items and skipped ingredients. Both sequences
// preserve the order of the match results they were built from.
type CartSummary struct {
	Items       []CartLineItem `json:"items"`
	Skipped     []SkippedItem  `json:"skipped"`
	TotalAmount float64        `json:"totalAmount"`
}
