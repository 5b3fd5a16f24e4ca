package catalog

import "github.com/lawalalx/foodplan/internal/domain"

// DefaultMeals seeds the meal book with common Nigerian dishes and baseline
// popularity counts. Live selection counts are layered on top at request time.
func DefaultMeals() []domain.Meal {
	return []domain.Meal{
		{
			Name:        "Jollof Rice",
			Category:    "rice",
			Ingredients: []string{"rice", "tomato", "pepper", "onion", "vegetable oil"},
			Popularity:  25,
		},
		{
			Name:        "Egusi Soup",
			Category:    "soup",
			Ingredients: []string{"egusi", "palm oil", "spinach", "pepper", "crayfish"},
			Popularity:  18,
		},
		{
			Name:        "Fried Rice",
			Category:    "rice",
			Ingredients: []string{"rice", "carrot", "green beans", "onion", "vegetable oil"},
			Popularity:  15,
		},
		{
			Name:        "Rice and Beans",
			Category:    "rice",
			Ingredients: []string{"rice", "beans", "palm oil", "onion", "pepper"},
			Popularity:  12,
		},
		{
			Name:        "Groundnut Stew",
			Category:    "stew",
			Ingredients: []string{"groundnut", "tomato", "pepper", "onion", "chicken"},
			Popularity:  8,
		},
		{
			Name:        "Suya",
			Category:    "grill",
			Ingredients: []string{"beef", "suya spice", "onion", "groundnut"},
			Popularity:  10,
		},
		{
			Name:        "Moi Moi",
			Category:    "beans",
			Ingredients: []string{"beans", "pepper", "onion", "vegetable oil", "egg"},
			Popularity:  9,
		},
		{
			Name:        "Pepper Soup",
			Category:    "soup",
			Ingredients: []string{"goat meat", "pepper soup spice", "scent leaf", "pepper", "onion"},
			Popularity:  7,
		},
	}
}

// DefaultProducts seeds the product catalog so matching works before the first
// catalog refresh.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: "prod-001", Name: "Rice", Category: "grains", Aliases: []string{"parboiled rice", "long grain rice"}, UnitPrice: 1200, Availability: domain.AvailabilityAvailable},
		{ID: "prod-002", Name: "Beans", Category: "legumes", Aliases: []string{"brown beans", "honey beans"}, UnitPrice: 900, Availability: domain.AvailabilityAvailable},
		{ID: "prod-003", Name: "Egusi", Category: "legumes", Aliases: []string{"melon seeds"}, UnitPrice: 800, Availability: domain.AvailabilityAvailable},
		{ID: "prod-004", Name: "Palm Oil", Category: "oils", Aliases: []string{"red oil"}, UnitPrice: 1500, Availability: domain.AvailabilityAvailable},
		{ID: "prod-005", Name: "Vegetable Oil", Category: "oils", UnitPrice: 1800, Availability: domain.AvailabilityAvailable},
		{ID: "prod-006", Name: "Tomato", Category: "vegetables", Aliases: []string{"fresh tomatoes"}, UnitPrice: 500, Availability: domain.AvailabilityAvailable},
		{ID: "prod-007", Name: "Pepper", Category: "vegetables", Aliases: []string{"scotch bonnet", "ata rodo"}, UnitPrice: 300, Availability: domain.AvailabilityAvailable},
		{ID: "prod-008", Name: "Onion", Category: "vegetables", Aliases: []string{"red onion"}, UnitPrice: 250, Availability: domain.AvailabilityAvailable},
		{ID: "prod-009", Name: "Spinach", Category: "vegetables", Aliases: []string{"efo", "green leaves"}, UnitPrice: 200, Availability: domain.AvailabilityAvailable},
		{ID: "prod-010", Name: "Crayfish", Category: "proteins", UnitPrice: 600, Availability: domain.AvailabilityAvailable},
		{ID: "prod-011", Name: "Chicken", Category: "proteins", Aliases: []string{"whole chicken"}, UnitPrice: 4500, Availability: domain.AvailabilityAvailable},
		{ID: "prod-012", Name: "Beef", Category: "proteins", UnitPrice: 3800, Availability: domain.AvailabilityAvailable},
		{ID: "prod-013", Name: "Groundnut", Category: "legumes", Aliases: []string{"peanut", "peanuts"}, UnitPrice: 700, Availability: domain.AvailabilityAvailable},
		{ID: "prod-014", Name: "Goat Meat", Category: "proteins", UnitPrice: 5200, Availability: domain.AvailabilityUnavailable, SubstituteID: "prod-012"},
		{ID: "prod-015", Name: "Carrot", Category: "vegetables", UnitPrice: 350, Availability: domain.AvailabilityAvailable},
		{ID: "prod-016", Name: "Green Beans", Category: "vegetables", UnitPrice: 400, Availability: domain.AvailabilityAvailable},
		{ID: "prod-017", Name: "Egg", Category: "proteins", Aliases: []string{"eggs", "crate of eggs"}, UnitPrice: 2200, Availability: domain.AvailabilityAvailable},
		{ID: "prod-018", Name: "Suya Spice", Category: "seasonings", Aliases: []string{"yaji"}, UnitPrice: 450, Availability: domain.AvailabilitySubstituteOnly, SubstituteID: "prod-007"},
	}
}
