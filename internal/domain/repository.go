package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Generator defines the interface to the external text-generation service.
// Implementations own their timeout, rate-limit and retry policy; callers only
// see validated, schema-checked structures or a typed error.
type Generator interface {
	GenerateMealPlan(ctx context.Context, req *PlanRequest) (PlanDays, error)
	GenerateIngredients(ctx context.Context, mealName string, householdSize int) ([]IngredientRequest, error)
}

// CatalogProvider hands out immutable product catalog snapshots.
type CatalogProvider interface {
	Snapshot() []Product
}

// FeedbackStore is the append-only persistence for feedback events. Events are
// replayed at startup to reconstruct user profiles.
type FeedbackStore interface {
	Append(ctx context.Context, event *FeedbackEvent) error
	Events(ctx context.Context, userID string) ([]FeedbackEvent, error)
	All(ctx context.Context) ([]FeedbackEvent, error)
}
