package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/internal/domain"
)

// PlannerConfig holds configuration for the planner service.
type PlannerConfig struct {
	CacheTTL time.Duration
}

// PlannerService orchestrates the planning flow: generate a meal plan, expand
// a meal into ingredients, match them against the current catalog snapshot and
// price the outcome. Generated ingredient lists are cached since they are
// expensive to produce and stable for a given meal and household size.
type PlannerService struct {
	generator domain.Generator
	catalog   domain.CatalogProvider
	cache     domain.CacheRepository
	matcher   *MatcherService
	cart      *CartService
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewPlannerService creates a planner service with its dependencies.
func NewPlannerService(
	generator domain.Generator,
	catalog domain.CatalogProvider,
	cache domain.CacheRepository,
	matcher *MatcherService,
	cart *CartService,
	config PlannerConfig,
	logger *zap.Logger,
) *PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}
	return &PlannerService{
		generator: generator,
		catalog:   catalog,
		cache:     cache,
		matcher:   matcher,
		cart:      cart,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GeneratePlan produces a meal plan for the user via the generation service.
func (s *PlannerService) GeneratePlan(ctx context.Context, req *domain.PlanRequest) (*domain.MealPlan, error) {
	if req == nil || req.UserID == "" {
		return nil, fmt.Errorf("%w: plan request requires a user", domain.ErrInvalidInput)
	}
	if req.Duration == "" {
		req.Duration = "weekly"
	}
	if req.HouseholdSize <= 0 {
		req.HouseholdSize = 1
	}

	days, err := s.generator.GenerateMealPlan(ctx, req)
	if err != nil {
		return nil, err
	}

	plan := &domain.MealPlan{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Duration:  req.Duration,
		Days:      days,
		CreatedAt: time.Now().UTC(),
	}
	s.logger.Info("meal plan generated",
		zap.String("user", req.UserID),
		zap.String("plan", plan.ID),
		zap.Int("days", len(days)))
	return plan, nil
}

// MealIngredients expands a meal into its ingredient list and matches every
// ingredient against the current catalog snapshot.
func (s *PlannerService) MealIngredients(ctx context.Context, mealName string, householdSize int) (*domain.IngredientListing, error) {
	if strings.TrimSpace(mealName) == "" {
		return nil, fmt.Errorf("%w: meal name is required", domain.ErrInvalidInput)
	}
	if householdSize <= 0 {
		householdSize = 1
	}

	ingredients, err := s.ingredientsFor(ctx, mealName, householdSize)
	if err != nil {
		return nil, err
	}

	snapshot := s.catalog.Snapshot()
	listing := &domain.IngredientListing{
		MealName:      mealName,
		HouseholdSize: householdSize,
		Matches:       make([]domain.MatchResult, 0, len(ingredients)),
	}
	for _, ingredient := range ingredients {
		result, err := s.matcher.Match(ctx, ingredient, snapshot)
		if err != nil {
			return nil, err
		}
		listing.Matches = append(listing.Matches, *result)
		if result.Matched() && result.Availability == domain.AvailabilityAvailable {
			listing.EstimatedCost += result.UnitPrice * ingredient.Quantity
		} else {
			listing.UnavailableCount++
		}
	}
	return listing, nil
}

// BuildCart aggregates match results into a cart summary.
func (s *PlannerService) BuildCart(results []domain.MatchResult) (*domain.CartSummary, error) {
	return s.cart.Build(results)
}

// ingredientsFor returns the generated ingredient list for a meal, consulting
// the cache first. Cache failures are non-fatal.
func (s *PlannerService) ingredientsFor(ctx context.Context, mealName string, householdSize int) ([]domain.IngredientRequest, error) {
	key := ingredientsCacheKey(mealName, householdSize)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if ingredients, ok := decodeIngredients(cached); ok {
				s.logger.Debug("ingredient cache hit", zap.String("meal", mealName))
				return ingredients, nil
			}
		}
	}

	ingredients, err := s.generator.GenerateIngredients(ctx, mealName, householdSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		encoded, err := json.Marshal(ingredients)
		if err == nil {
			if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
				s.logger.Warn("ingredient cache write failed", zap.String("meal", mealName), zap.Error(err))
			}
		}
	}
	return ingredients, nil
}

// ingredientsCacheKey builds a normalized cache key for a meal's ingredient list.
func ingredientsCacheKey(mealName string, householdSize int) string {
	name := strings.ToLower(strings.TrimSpace(mealName))
	name = multiSpaceRegex.ReplaceAllString(name, " ")
	return fmt.Sprintf("ingredients:%s:%d", name, householdSize)
}

// decodeIngredients converts a cached value (stored as a JSON string) back to
// an ingredient list.
func decodeIngredients(value interface{}) ([]domain.IngredientRequest, bool) {
	raw, ok := value.(string)
	if !ok {
		return nil, false
	}
	var ingredients []domain.IngredientRequest
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil, false
	}
	return ingredients, true
}
