package domain

import "time"

// EventKind is the type of a recorded user interaction.
type EventKind string

const (
	EventViewed    EventKind = "viewed"
	EventSelected  EventKind = "selected"
	EventPurchased EventKind = "purchased"
	EventCooked    EventKind = "cooked"
	EventRemoved   EventKind = "removed"
	EventRated     EventKind = "rated"
)

// ValidEventKind reports whether k belongs to the recognized set.
func ValidEventKind(k EventKind) bool {
	switch k {
	case EventViewed, EventSelected, EventPurchased, EventCooked, EventRemoved, EventRated:
		return true
	}
	return false
}

// FeedbackEvent is one immutable, append-only interaction record.
// Rating is set only for "rated" events; Ingredient only for "removed" events.
type FeedbackEvent struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	MealName   string    `json:"mealName"`
	Kind       EventKind `json:"kind"`
	Rating     int       `json:"rating,omitempty"`
	Ingredient string    `json:"ingredient,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// MealStats holds per-meal interaction counters for one user.
type MealStats struct {
	Views      int `json:"views"`
	Selections int `json:"selections"`
	Purchases  int `json:"purchases"`
	Cooks      int `json:"cooks"`
}

// UserProfile is a user's behavioral profile. Created lazily on first feedback
// event, mutated only by the feedback recorder, read by the recommendation
// engine. Never deleted by this core.
type UserProfile struct {
	UserID             string                `json:"userId"`
	Meals              map[string]*MealStats `json:"meals"`
	RemovedIngredients map[string]bool       `json:"removedIngredients"`
	Ratings            []int                 `json:"ratings"`
	TotalInteractions  int                   `json:"totalInteractions"`
	LastUpdated        time.Time             `json:"lastUpdated"`
}

// NewUserProfile returns an empty profile for the given user.
func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:             userID,
		Meals:              make(map[string]*MealStats),
		RemovedIngredients: make(map[string]bool),
	}
}

// Stats returns the counters for a meal, creating them on first use.
func (p *UserProfile) Stats(mealName string) *MealStats {
	s, ok := p.Meals[mealName]
	if !ok {
		s = &MealStats{}
		p.Meals[mealName] = s
	}
	return s
}

// Clone returns a deep copy safe to hand to callers while the original keeps
// being mutated under the recorder's lock.
func (p *UserProfile) Clone() *UserProfile {
	c := NewUserProfile(p.UserID)
	c.TotalInteractions = p.TotalInteractions
	c.LastUpdated = p.LastUpdated
	for name, s := range p.Meals {
		cp := *s
		c.Meals[name] = &cp
	}
	for ing := range p.RemovedIngredients {
		c.RemovedIngredients[ing] = true
	}
	c.Ratings = append(c.Ratings, p.Ratings...)
	return c
}

// ProfileInsights is a summary view of a profile for the API layer.
type ProfileInsights struct {
	UserID             string    `json:"userId"`
	TotalInteractions  int       `json:"totalInteractions"`
	FavoriteMeals      []string  `json:"favoriteMeals"`
	RemovedIngredients []string  `json:"removedIngredients"`
	AverageRating      float64   `json:"averageRating"`
	LastUpdated        time.Time `json:"lastUpdated"`
}
