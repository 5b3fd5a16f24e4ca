package domain

import "time"

// MealSlot is one of the three meal positions in a day plan.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// Meal is an entry in the known-meals catalog used by the recommendation
// engine. Ingredients lists the core ingredient names; Popularity is the
// aggregate selection count across all users.
type Meal struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Popularity  int      `json:"popularity"`
}

// PlanDays maps a day key ("day_1", "day_2", ...) to the meal name per slot.
type PlanDays map[string]map[MealSlot]string

// PlanRequest captures everything the generation service needs to produce a plan.
type PlanRequest struct {
	UserID              string   `json:"userId"`
	Duration            string   `json:"duration"` // "weekly" or "monthly"
	HouseholdSize       int      `json:"householdSize"`
	BudgetLevel         string   `json:"budgetLevel,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	FrequentPurchases   []string `json:"frequentPurchases,omitempty"`
}

// MealPlan is a generated plan with identity and timestamps attached.
type MealPlan struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Duration  string    `json:"duration"`
	Days      PlanDays  `json:"days"`
	CreatedAt time.Time `json:"createdAt"`
}

// IngredientListing is the priced, catalog-matched ingredient list for a meal.
type IngredientListing struct {
	MealName         string        `json:"mealName"`
	HouseholdSize    int           `json:"householdSize"`
	Matches          []MatchResult `json:"matches"`
	EstimatedCost    float64       `json:"estimatedCost"`
	UnavailableCount int           `json:"unavailableCount"`
}

// Recommendation reasons come from a fixed vocabulary.
const (
	ReasonSimilarToFavorites = "similar_to_favorites"
	ReasonPopularDefault     = "popular_default"
)

// Recommendation is one ranked meal suggestion.
type Recommendation struct {
	MealName string  `json:"mealName"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
}
