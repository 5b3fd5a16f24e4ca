package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/lawalalx/foodplan/internal/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Rice", Category: "grains", Aliases: []string{"parboiled rice"}, UnitPrice: 1200, Availability: domain.AvailabilityAvailable},
		{ID: "p2", Name: "Palm Oil", Category: "oils", UnitPrice: 1500, Availability: domain.AvailabilityAvailable},
		{ID: "p3", Name: "Tomato Paste", Category: "seasonings", UnitPrice: 400, Availability: domain.AvailabilityAvailable},
		{ID: "p4", Name: "Goat Meat", Category: "proteins", UnitPrice: 5200, Availability: domain.AvailabilityUnavailable, SubstituteID: "p5"},
		{ID: "p5", Name: "Beef", Category: "proteins", UnitPrice: 3800, Availability: domain.AvailabilityAvailable},
		{ID: "p6", Name: "Suya Spice", Category: "seasonings", UnitPrice: 450, Availability: domain.AvailabilitySubstituteOnly, SubstituteID: "p2"},
		{ID: "p7", Name: "Pepper", Category: "vegetables", UnitPrice: 300, Availability: domain.AvailabilityAvailable},
	}
}

func newTestMatcher() *MatcherService {
	return NewMatcherService(nil, MatcherConfig{}, nil)
}

func ingredient(name string) domain.IngredientRequest {
	return domain.IngredientRequest{Name: name, Quantity: 1, Unit: "pieces"}
}

func TestMatch_ExactTier(t *testing.T) {
	m := newTestMatcher()
	catalog := testCatalog()

	t.Run("full name match scores 1.0", func(t *testing.T) {
		result, err := m.Match(context.Background(), ingredient("Rice"), catalog)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.ProductID != "p1" || result.Tier != domain.TierExact {
			t.Errorf("got product %s tier %s, want p1 exact", result.ProductID, result.Tier)
		}
		if result.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want 1.0", result.Confidence)
		}
	})

	t.Run("alias match scores 0.95", func(t *testing.T) {
		result, err := m.Match(context.Background(), ingredient("parboiled rice"), catalog)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.ProductID != "p1" || result.Tier != domain.TierExact {
			t.Errorf("got product %s tier %s, want p1 exact", result.ProductID, result.Tier)
		}
		if result.Confidence != 0.95 {
			t.Errorf("Confidence = %v, want 0.95", result.Confidence)
		}
	})

	t.Run("normalization applies before matching", func(t *testing.T) {
		result, err := m.Match(context.Background(), ingredient("2 cups of Rice"), catalog)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.ProductID != "p1" || result.Tier != domain.TierExact {
			t.Errorf("got product %s tier %s, want p1 exact", result.ProductID, result.Tier)
		}
	})
}

func TestMatch_FuzzyTier(t *testing.T) {
	m := newTestMatcher()
	catalog := testCatalog()

	t.Run("near-identical name stays below exact band", func(t *testing.T) {
		// "tomato past" scores above 0.95 against "Tomato Paste" but is not an
		// exact match, so the confidence is capped just under the exact band.
		result, err := m.Match(context.Background(), ingredient("tomato past"), catalog)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.ProductID != "p3" || result.Tier != domain.TierFuzzy {
			t.Errorf("got product %s tier %s, want p3 fuzzy", result.ProductID, result.Tier)
		}
		if result.Confidence != 0.949 {
			t.Errorf("Confidence = %v, want 0.949", result.Confidence)
		}
	})

	t.Run("mid-band score is the similarity itself", func(t *testing.T) {
		result, err := m.Match(context.Background(), ingredient("tomato sauce"), catalog)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.ProductID != "p3" || result.Tier != domain.TierFuzzy {
			t.Errorf("got product %s tier %s, want p3 fuzzy", result.ProductID, result.Tier)
		}
		if result.Confidence < 0.70 || result.Confidence >= 0.95 {
			t.Errorf("Confidence = %v, want within [0.70, 0.95)", result.Confidence)
		}
	})
}

func TestMatch_FuzzyTieBreaks(t *testing.T) {
	m := newTestMatcher()

	t.Run("available product beats unavailable on a tie", func(t *testing.T) {
		catalog := []domain.Product{
			{ID: "b1", Name: "Yam Flour", Category: "grains", Availability: domain.AvailabilityUnavailable},
			{ID: "b2", Name: "Yam Flour", Category: "grains", Availability: domain.AvailabilityAvailable},
		}
		result, err := m.Match(context.Background(), ingredient("yam floor"), catalog)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.ProductID != "b2" {
			t.Errorf("got product %s, want available b2", result.ProductID)
		}
	})

	t.Run("smaller ID wins when availability ties", func(t *testing.T) {
		catalog := []domain.Product{
			{ID: "c2", Name: "Yam Flour", Category: "grains", Availability: domain.AvailabilityAvailable},
			{ID: "c1", Name: "Yam Flour", Category: "grains", Availability: domain.AvailabilityAvailable},
		}
		result, err := m.Match(context.Background(), ingredient("yam floor"), catalog)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.ProductID != "c1" {
			t.Errorf("got product %s, want c1", result.ProductID)
		}
	})
}

func TestMatch_CategoryTier(t *testing.T) {
	m := newTestMatcher()
	catalog := testCatalog()

	// Too far from any product name for the fuzzy tier, but "pepper" hints at
	// the vegetables category where an available product clears the floor.
	result, err := m.Match(context.Background(), ingredient("bell pepper blend"), catalog)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if result.ProductID != "p7" || result.Tier != domain.TierCategory {
		t.Errorf("got product %s tier %s, want p7 category", result.ProductID, result.Tier)
	}
	if result.Confidence < 0.50 || result.Confidence >= 0.70 {
		t.Errorf("Confidence = %v, want within [0.50, 0.70)", result.Confidence)
	}
}

func TestMatch_NoneTier(t *testing.T) {
	m := newTestMatcher()

	t.Run("unmatched with substitute suggestion", func(t *testing.T) {
		result, err := m.Match(context.Background(), ingredient("curry leaves seasoning"), testCatalog())
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.Matched() || result.Tier != domain.TierNone || result.Confidence != 0 {
			t.Errorf("got %+v, want unmatched none tier with zero confidence", result)
		}
		if result.SubstituteID != "p6" {
			t.Errorf("SubstituteID = %s, want substitute-only p6", result.SubstituteID)
		}
	})

	t.Run("empty catalog yields none without error", func(t *testing.T) {
		result, err := m.Match(context.Background(), ingredient("rice"), nil)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.Matched() || result.Tier != domain.TierNone {
			t.Errorf("got %+v, want unmatched none tier", result)
		}
	})

	t.Run("no category hint leaves substitute empty", func(t *testing.T) {
		result, err := m.Match(context.Background(), ingredient("zobo leaves"), testCatalog())
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.Tier != domain.TierNone || result.SubstituteID != "" {
			t.Errorf("got tier %s substitute %q, want none tier without substitute", result.Tier, result.SubstituteID)
		}
	})
}

func TestMatch_InvalidIngredient(t *testing.T) {
	m := newTestMatcher()

	for _, raw := range []string{"", "   ", "!!!"} {
		if _, err := m.Match(context.Background(), ingredient(raw), testCatalog()); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Match(%q) error = %v, want ErrInvalidInput", raw, err)
		}
	}
}

func TestMatch_UnavailableMatchCarriesSubstitute(t *testing.T) {
	m := newTestMatcher()

	result, err := m.Match(context.Background(), ingredient("goat meat"), testCatalog())
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if result.ProductID != "p4" || result.Tier != domain.TierExact {
		t.Errorf("got product %s tier %s, want p4 exact", result.ProductID, result.Tier)
	}
	if result.Availability != domain.AvailabilityUnavailable || result.SubstituteID != "p5" {
		t.Errorf("got availability %s substitute %q, want unavailable with p5", result.Availability, result.SubstituteID)
	}
}
