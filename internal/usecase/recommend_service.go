package usecase

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/internal/domain"
)

// Default recommendation weights. The purchase and cook multipliers reflect
// increasing commitment; all are configurable.
const (
	selectionWeightDefault  = 1.0
	purchaseWeightDefault   = 2.0
	cookWeightDefault       = 3.0
	favoriteLimitDefault    = 3
	popularityWeightDefault = 0.1
)

// RecommendConfig holds configuration for the recommendation engine.
type RecommendConfig struct {
	SelectionWeight  float64
	PurchaseWeight   float64
	CookWeight       float64
	FavoriteLimit    int
	PopularityWeight float64
}

// RecommendService ranks meal suggestions from a user's behavioral profile, or
// from global popularity for cold-start users.
type RecommendService struct {
	selectionWeight  float64
	purchaseWeight   float64
	cookWeight       float64
	favoriteLimit    int
	popularityWeight float64
	logger           *zap.Logger
}

// NewRecommendService creates a recommendation service. Zero-value weights
// fall back to the documented defaults.
func NewRecommendService(config RecommendConfig, logger *zap.Logger) *RecommendService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &RecommendService{
		selectionWeight:  config.SelectionWeight,
		purchaseWeight:   config.PurchaseWeight,
		cookWeight:       config.CookWeight,
		favoriteLimit:    config.FavoriteLimit,
		popularityWeight: config.PopularityWeight,
		logger:           logger,
	}
	if s.selectionWeight <= 0 {
		s.selectionWeight = selectionWeightDefault
	}
	if s.purchaseWeight <= 0 {
		s.purchaseWeight = purchaseWeightDefault
	}
	if s.cookWeight <= 0 {
		s.cookWeight = cookWeightDefault
	}
	if s.favoriteLimit <= 0 {
		s.favoriteLimit = favoriteLimitDefault
	}
	if s.popularityWeight <= 0 {
		s.popularityWeight = popularityWeightDefault
	}
	return s
}

// Recommend returns at most count ranked suggestions. A nil profile or one with
// zero interactions takes the cold-start path (global popularity); otherwise
// meals similar to the user's favorites are ranked, excluding meals whose core
// ingredients the user has removed. Never pads: fewer qualifying meals mean
// fewer results.
func (s *RecommendService) Recommend(profile *domain.UserProfile, meals []domain.Meal, count int) ([]domain.Recommendation, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", domain.ErrInvalidInput)
	}

	if profile == nil || profile.TotalInteractions == 0 {
		return s.popularDefaults(meals, count), nil
	}
	return s.similarToFavorites(profile, meals, count), nil
}

// popularDefaults ranks all known meals by global popularity, ties broken by
// lexicographic meal name.
func (s *RecommendService) popularDefaults(meals []domain.Meal, count int) []domain.Recommendation {
	ranked := make([]domain.Meal, len(meals))
	copy(ranked, meals)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Popularity != ranked[j].Popularity {
			return ranked[i].Popularity > ranked[j].Popularity
		}
		return ranked[i].Name < ranked[j].Name
	})

	total := 0
	for _, m := range meals {
		total += m.Popularity
	}

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	recommendations := make([]domain.Recommendation, 0, len(ranked))
	for _, m := range ranked {
		score := 0.0
		if total > 0 {
			score = float64(m.Popularity) / float64(total)
		}
		recommendations = append(recommendations, domain.Recommendation{
			MealName: m.Name,
			Score:    score,
			Reason:   domain.ReasonPopularDefault,
		})
	}
	return recommendations
}

// similarToFavorites scores unseen meals by ingredient overlap with the user's
// top favorites, using global popularity as a tiebreaker component.
func (s *RecommendService) similarToFavorites(profile *domain.UserProfile, meals []domain.Meal, count int) []domain.Recommendation {
	favorites := s.topFavorites(profile)
	favoriteSet := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		favoriteSet[f] = true
	}

	mealByName := make(map[string]*domain.Meal, len(meals))
	for i := range meals {
		mealByName[meals[i].Name] = &meals[i]
	}

	totalPopularity := 0
	for _, m := range meals {
		totalPopularity += m.Popularity
	}

	type scored struct {
		name  string
		score float64
	}
	candidates := make([]scored, 0, len(meals))
	for i := range meals {
		meal := &meals[i]
		if favoriteSet[meal.Name] {
			continue
		}
		if stats, ok := profile.Meals[meal.Name]; ok && stats.Views > 0 {
			continue // already seen
		}
		if s.excludedByRemovals(meal, profile) {
			continue
		}

		similarity := 0.0
		for _, favorite := range favorites {
			favoriteMeal, ok := mealByName[favorite]
			if !ok {
				continue // favorite not in the known-meals catalog
			}
			if overlap := ingredientJaccard(meal.Ingredients, favoriteMeal.Ingredients); overlap > similarity {
				similarity = overlap
			}
		}

		score := similarity
		if totalPopularity > 0 {
			score += s.popularityWeight * float64(meal.Popularity) / float64(totalPopularity)
		}
		candidates = append(candidates, scored{meal.Name, score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	recommendations := make([]domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recommendations = append(recommendations, domain.Recommendation{
			MealName: c.name,
			Score:    c.score,
			Reason:   domain.ReasonSimilarToFavorites,
		})
	}
	s.logger.Debug("personalized recommendations",
		zap.String("user", profile.UserID),
		zap.Strings("favorites", favorites),
		zap.Int("returned", len(recommendations)))
	return recommendations
}

// topFavorites returns up to K meal names ranked by favorite-score:
// selections + 2*purchases + 3*cooks (configurable weights). Only meals with a
// positive score qualify.
func (s *RecommendService) topFavorites(profile *domain.UserProfile) []string {
	type favorite struct {
		name  string
		score float64
	}
	favorites := make([]favorite, 0, len(profile.Meals))
	for name, stats := range profile.Meals {
		score := s.selectionWeight*float64(stats.Selections) +
			s.purchaseWeight*float64(stats.Purchases) +
			s.cookWeight*float64(stats.Cooks)
		if score > 0 {
			favorites = append(favorites, favorite{name, score})
		}
	}
	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].score != favorites[j].score {
			return favorites[i].score > favorites[j].score
		}
		return favorites[i].name < favorites[j].name
	})

	limit := s.favoriteLimit
	if len(favorites) < limit {
		limit = len(favorites)
	}
	names := make([]string, 0, limit)
	for _, f := range favorites[:limit] {
		names = append(names, f.name)
	}
	return names
}

// excludedByRemovals reports whether any of the meal's core ingredients is in
// the user's removed-ingredients set.
func (s *RecommendService) excludedByRemovals(meal *domain.Meal, profile *domain.UserProfile) bool {
	for _, ingredient := range meal.Ingredients {
		if profile.RemovedIngredients[strings.ToLower(strings.TrimSpace(ingredient))] {
			return true
		}
	}
	return false
}

// ingredientJaccard is the token-set overlap between two ingredient lists:
// shared tokens divided by union size.
func ingredientJaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]bool, len(a))
	for _, ing := range a {
		setA[strings.ToLower(strings.TrimSpace(ing))] = true
	}
	shared := 0
	union := len(setA)
	seen := make(map[string]bool, len(b))
	for _, ing := range b {
		token := strings.ToLower(strings.TrimSpace(ing))
		if seen[token] {
			continue
		}
		seen[token] = true
		if setA[token] {
			shared++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}
