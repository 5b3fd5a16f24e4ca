package llm

import (
	"fmt"
	"strings"

	"github.com/lawalalx/foodplan/internal/domain"
)

const mealPlanSystemPrompt = `You are a Nigerian meal planning assistant. ` +
	`You respond with JSON only, no prose and no markdown fences.`

const ingredientsSystemPrompt = `You are a Nigerian cooking assistant that lists ` +
	`the ingredients needed to prepare a dish. You respond with JSON only, ` +
	`no prose and no markdown fences.`

// mealPlanPrompt renders the user message for a plan generation call.
func mealPlanPrompt(req *domain.PlanRequest) string {
	var b strings.Builder

	days := 7
	if req.Duration == "monthly" {
		days = 28
	}
	fmt.Fprintf(&b, "Create a %s Nigerian meal plan covering %d days for a household of %d.\n",
		req.Duration, days, req.HouseholdSize)
	if req.BudgetLevel != "" {
		fmt.Fprintf(&b, "Budget level: %s.\n", req.BudgetLevel)
	}
	if len(req.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "Dietary restrictions: %s.\n", strings.Join(req.DietaryRestrictions, ", "))
	}
	if len(req.FrequentPurchases) > 0 {
		fmt.Fprintf(&b, "The household frequently buys: %s. Favor meals that use these.\n",
			strings.Join(req.FrequentPurchases, ", "))
	}
	fmt.Fprintf(&b, `Respond with a JSON object of the form
{"day_1": {"breakfast": "...", "lunch": "...", "dinner": "..."}, ..., "day_%d": {...}}
where every value is the name of a Nigerian meal.`, days)
	return b.String()
}

// ingredientsPrompt renders the user message for an ingredient expansion call.
func ingredientsPrompt(mealName string, householdSize int) string {
	return fmt.Sprintf(`List the ingredients needed to cook %s for %d people.
Respond with a JSON array of the form
[{"name": "rice", "quantity": 2, "unit": "cups"}, ...]
where quantity is a positive number and unit is a common measure such as
cups, kg, pieces, litres or tablespoons.`, mealName, householdSize)
}
