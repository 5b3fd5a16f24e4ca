package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lawalalx/foodplan/internal/domain"
)

// planSlots are the meal slots every generated day must populate.
var planSlots = []domain.MealSlot{
	domain.SlotBreakfast,
	domain.SlotLunch,
	domain.SlotDinner,
}

// ParseMealPlan extracts and validates a meal plan from generation output.
// Generation services wrap their JSON in prose or markdown fences often enough
// that the payload is located by delimiters rather than parsed whole.
func ParseMealPlan(content string) (domain.PlanDays, error) {
	payload, err := extractJSON(content, '{', '}')
	if err != nil {
		return nil, err
	}

	var raw map[string]map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: plan is not a JSON object: %v", domain.ErrMalformedGenerationOutput, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: plan has no days", domain.ErrMalformedGenerationOutput)
	}

	days := make(domain.PlanDays, len(raw))
	for day, slots := range raw {
		if !strings.HasPrefix(day, "day_") {
			return nil, fmt.Errorf("%w: unexpected day key %q", domain.ErrMalformedGenerationOutput, day)
		}
		parsed := make(map[domain.MealSlot]string, len(planSlots))
		for _, slot := range planSlots {
			value, ok := slots[string(slot)]
			if !ok {
				return nil, fmt.Errorf("%w: %s is missing %s", domain.ErrMalformedGenerationOutput, day, slot)
			}
			name, ok := value.(string)
			if !ok || strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("%w: %s has an empty %s", domain.ErrMalformedGenerationOutput, day, slot)
			}
			parsed[slot] = strings.TrimSpace(name)
		}
		days[day] = parsed
	}
	return days, nil
}

// ParseIngredients extracts and validates an ingredient list from generation
// output. Every entry needs a non-empty name and a positive quantity.
func ParseIngredients(content string) ([]domain.IngredientRequest, error) {
	payload, err := extractJSON(content, '[', ']')
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Name     string      `json:"name"`
		Quantity json.Number `json:"quantity"`
		Unit     string      `json:"unit"`
	}
	decoder := json.NewDecoder(strings.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: ingredients are not a JSON array: %v", domain.ErrMalformedGenerationOutput, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: ingredient list is empty", domain.ErrMalformedGenerationOutput)
	}

	ingredients := make([]domain.IngredientRequest, 0, len(raw))
	for i, item := range raw {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: ingredient %d has no name", domain.ErrMalformedGenerationOutput, i)
		}
		quantity, err := item.Quantity.Float64()
		if err != nil || quantity <= 0 {
			return nil, fmt.Errorf("%w: ingredient %q has an invalid quantity", domain.ErrMalformedGenerationOutput, name)
		}
		ingredients = append(ingredients, domain.IngredientRequest{
			Name:     name,
			Quantity: quantity,
			Unit:     strings.TrimSpace(item.Unit),
		})
	}
	return ingredients, nil
}

// extractJSON returns the substring between the first open delimiter and the
// last close delimiter, inclusive.
func extractJSON(content string, open, close byte) (string, error) {
	start := strings.IndexByte(content, open)
	end := strings.LastIndexByte(content, close)
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON payload in response", domain.ErrMalformedGenerationOutput)
	}
	return content[start : end+1], nil
}
