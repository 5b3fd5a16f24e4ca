package usecase

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/internal/domain"
)

// CartService aggregates match results into a shopping cart summary.
type CartService struct {
	logger *zap.Logger
}

// NewCartService creates a new cart service.
func NewCartService(logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{logger: logger}
}

// Build turns a sequence of match results into cart line items and skipped
// entries, preserving input order in both lists. Results without a match are
// skipped with reason "no_match"; matches to non-available products with
// reason "unavailable". Subtotal = unit price * quantity; the quantity of any
// result that would produce a line item must be a positive number.
func (s *CartService) Build(results []domain.MatchResult) (*domain.CartSummary, error) {
	summary := &domain.CartSummary{
		Items:   make([]domain.CartLineItem, 0, len(results)),
		Skipped: make([]domain.SkippedItem, 0),
	}

	for _, r := range results {
		if !r.Matched() {
			summary.Skipped = append(summary.Skipped, domain.SkippedItem{
				Ingredient: r.Ingredient.Name,
				Reason:     domain.SkipReasonNoMatch,
			})
			continue
		}
		if r.Availability != domain.AvailabilityAvailable {
			summary.Skipped = append(summary.Skipped, domain.SkippedItem{
				Ingredient: r.Ingredient.Name,
				Reason:     domain.SkipReasonUnavailable,
			})
			continue
		}

		qty := r.Ingredient.Quantity
		if qty <= 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
			return nil, fmt.Errorf("%w: %q has quantity %v", domain.ErrInvalidQuantity, r.Ingredient.Name, qty)
		}

		subtotal := r.UnitPrice * qty
		summary.Items = append(summary.Items, domain.CartLineItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Ingredient:  r.Ingredient.Name,
			Quantity:    qty,
			Unit:        r.Ingredient.Unit,
			UnitPrice:   r.UnitPrice,
			Subtotal:    subtotal,
		})
		summary.TotalAmount += subtotal
	}

	s.logger.Debug("cart built",
		zap.Int("added", len(summary.Items)),
		zap.Int("skipped", len(summary.Skipped)),
		zap.Float64("total", summary.TotalAmount))
	return summary, nil
}
