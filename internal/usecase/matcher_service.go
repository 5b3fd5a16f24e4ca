package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/internal/domain"
)

// Confidence bands per match tier.
const (
	exactAliasConfidence  = 0.95
	exactNameBonus        = 0.05
	fuzzyThresholdDefault = 0.70
	// A similarity at or above 0.95 without exact string equality still belongs
	// to the fuzzy tier; its confidence is capped just below the exact band.
	fuzzyConfidenceCap       = 0.949
	categoryThresholdDefault = 0.50
	categoryConfidenceCap    = 0.699
	tieEpsilonDefault        = 0.01
)

// MatcherConfig holds configuration for the product matcher.
type MatcherConfig struct {
	FuzzyThreshold    float64
	CategoryThreshold float64
	TieEpsilon        float64
	CategoryKeywords  map[string][]string
}

// MatcherService resolves ingredient names to catalog products through an
// ordered tier cascade: exact, fuzzy, category, none. The first tier that
// decides wins. Pure over its inputs plus the supplied catalog snapshot.
type MatcherService struct {
	normalizer        *Normalizer
	fuzzyThreshold    float64
	categoryThreshold float64
	tieEpsilon        float64
	categoryKeywords  map[string][]string
	categories        []string
	logger            *zap.Logger
}

// NewMatcherService creates a matcher with the given configuration. Zero-value
// thresholds fall back to the documented defaults.
func NewMatcherService(normalizer *Normalizer, config MatcherConfig, logger *zap.Logger) *MatcherService {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fuzzy := config.FuzzyThreshold
	if fuzzy <= 0 {
		fuzzy = fuzzyThresholdDefault
	}
	category := config.CategoryThreshold
	if category <= 0 {
		category = categoryThresholdDefault
	}
	epsilon := config.TieEpsilon
	if epsilon <= 0 {
		epsilon = tieEpsilonDefault
	}
	keywords := config.CategoryKeywords
	if keywords == nil {
		keywords = DefaultCategoryKeywords()
	}

	// Stable category iteration order for deterministic inference.
	categories := make([]string, 0, len(keywords))
	for c := range keywords {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return &MatcherService{
		normalizer:        normalizer,
		fuzzyThreshold:    fuzzy,
		categoryThreshold: category,
		tieEpsilon:        epsilon,
		categoryKeywords:  keywords,
		categories:        categories,
		logger:            logger,
	}
}

// Match resolves one ingredient against a catalog snapshot. It never fails for
// an empty catalog (none-tier result); it fails only when the ingredient name
// is empty after normalization.
func (s *MatcherService) Match(ctx context.Context, ingredient domain.IngredientRequest, catalog []domain.Product) (*domain.MatchResult, error) {
	name := s.normalizer.Normalize(ingredient.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: ingredient name is empty after normalization", domain.ErrInvalidInput)
	}

	tiers := []func(string, []domain.Product) *domain.MatchResult{
		s.matchExact,
		s.matchFuzzy,
		s.matchCategory,
	}
	for _, tier := range tiers {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if result := tier(name, catalog); result != nil {
			result.Ingredient = ingredient
			s.logger.Debug("ingredient matched",
				zap.String("ingredient", name),
				zap.String("tier", string(result.Tier)),
				zap.String("product", result.ProductID),
				zap.Float64("confidence", result.Confidence))
			return result, nil
		}
	}

	return s.matchNone(name, ingredient, catalog), nil
}

// matchExact decides when the normalized name equals a product name or alias
// case-insensitively. Full-name equality earns a small bonus over alias equality.
func (s *MatcherService) matchExact(name string, catalog []domain.Product) *domain.MatchResult {
	var best *domain.Product
	var confidence float64

	for i := range catalog {
		p := &catalog[i]
		if strings.EqualFold(name, p.Name) {
			c := exactAliasConfidence + exactNameBonus
			if c > 1.0 {
				c = 1.0
			}
			if best == nil || c > confidence || (c == confidence && p.ID < best.ID) {
				best, confidence = p, c
			}
			continue
		}
		for _, alias := range p.Aliases {
			if strings.EqualFold(name, alias) {
				if best == nil || exactAliasConfidence > confidence ||
					(exactAliasConfidence == confidence && p.ID < best.ID) {
					best, confidence = p, exactAliasConfidence
				}
				break
			}
		}
	}

	if best == nil {
		return nil
	}
	return resultFor(best, confidence, domain.TierExact)
}

// matchFuzzy decides when the best similarity against product names and aliases
// clears the fuzzy threshold. Confidence is the score itself. Products scoring
// within the tie epsilon of each other are ordered by availability, then ID.
func (s *MatcherService) matchFuzzy(name string, catalog []domain.Product) *domain.MatchResult {
	var best *domain.Product
	bestScore := -1.0

	for i := range catalog {
		p := &catalog[i]
		score := productSimilarity(name, p)
		if best == nil || score > bestScore+s.tieEpsilon {
			best, bestScore = p, score
			continue
		}
		if score >= bestScore-s.tieEpsilon {
			// Tied within epsilon: prefer available stock, then the smaller ID.
			if preferOver(p, score, best, bestScore) {
				best, bestScore = p, score
			}
		}
	}

	if best == nil || bestScore < s.fuzzyThreshold {
		return nil
	}
	confidence := bestScore
	if confidence > fuzzyConfidenceCap {
		confidence = fuzzyConfidenceCap
	}
	return resultFor(best, confidence, domain.TierFuzzy)
}

// matchCategory infers a category from keyword hints and takes the most
// name-similar available product in it, provided similarity clears the floor.
func (s *MatcherService) matchCategory(name string, catalog []domain.Product) *domain.MatchResult {
	category := s.inferCategory(name)
	if category == "" {
		return nil
	}

	var best *domain.Product
	bestScore := -1.0
	for i := range catalog {
		p := &catalog[i]
		if !strings.EqualFold(p.Category, category) || p.Availability != domain.AvailabilityAvailable {
			continue
		}
		score := productSimilarity(name, p)
		if score > bestScore || (score == bestScore && best != nil && p.ID < best.ID) {
			best, bestScore = p, score
		}
	}

	if best == nil || bestScore < s.categoryThreshold {
		return nil
	}
	// Map similarity in [0.5, 1] linearly onto the category band [0.50, 0.70).
	confidence := s.categoryThreshold + 0.4*(bestScore-s.categoryThreshold)
	if confidence > categoryConfidenceCap {
		confidence = categoryConfidenceCap
	}
	return resultFor(best, confidence, domain.TierCategory)
}

// matchNone builds the none-tier result, suggesting a substitute product from
// the inferred category when one is flagged substitute-only.
func (s *MatcherService) matchNone(name string, ingredient domain.IngredientRequest, catalog []domain.Product) *domain.MatchResult {
	result := &domain.MatchResult{
		Ingredient: ingredient,
		Confidence: 0,
		Tier:       domain.TierNone,
	}
	category := s.inferCategory(name)
	if category == "" {
		return result
	}
	var substitute string
	for i := range catalog {
		p := &catalog[i]
		if !strings.EqualFold(p.Category, category) || p.Availability != domain.AvailabilitySubstituteOnly {
			continue
		}
		if substitute == "" || p.ID < substitute {
			substitute = p.ID
		}
	}
	result.SubstituteID = substitute
	return result
}

// inferCategory maps an ingredient name to a category via the keyword table.
// Categories are scanned in sorted order so inference is deterministic.
func (s *MatcherService) inferCategory(name string) string {
	for _, category := range s.categories {
		for _, keyword := range s.categoryKeywords[category] {
			if name == keyword || strings.Contains(name, keyword) || strings.Contains(keyword, name) {
				return category
			}
		}
	}
	return ""
}

// productSimilarity is the best similarity of name against a product's name
// and all of its aliases.
func productSimilarity(name string, p *domain.Product) float64 {
	best := Similarity(name, strings.ToLower(p.Name))
	for _, alias := range p.Aliases {
		if score := Similarity(name, strings.ToLower(alias)); score > best {
			best = score
		}
	}
	return best
}

// preferOver reports whether candidate should replace current when their
// scores tie within the epsilon.
func preferOver(candidate *domain.Product, candidateScore float64, current *domain.Product, currentScore float64) bool {
	candidateAvailable := candidate.Availability == domain.AvailabilityAvailable
	currentAvailable := current.Availability == domain.AvailabilityAvailable
	if candidateAvailable != currentAvailable {
		return candidateAvailable
	}
	if candidate.ID != current.ID {
		// Scores differ inside the epsilon: availability equal, fall back to
		// the lexicographically smaller ID regardless of the tiny score gap.
		return candidate.ID < current.ID
	}
	return candidateScore > currentScore
}

// resultFor builds a match result carrying the product's pricing and
// availability. The substitute link is carried only when the product itself
// cannot be purchased directly.
func resultFor(p *domain.Product, confidence float64, tier domain.MatchTier) *domain.MatchResult {
	result := &domain.MatchResult{
		ProductID:    p.ID,
		ProductName:  p.Name,
		UnitPrice:    p.UnitPrice,
		Availability: p.Availability,
		Confidence:   confidence,
		Tier:         tier,
	}
	if p.Availability != domain.AvailabilityAvailable && p.SubstituteID != "" {
		result.SubstituteID = p.SubstituteID
	}
	return result
}
