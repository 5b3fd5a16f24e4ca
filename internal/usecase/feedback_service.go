package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/internal/domain"
)

// FeedbackService records interaction events into per-user behavioral profiles
// and an append-only event log. Updates to one user's profile are serialized by
// a per-user lock; writes for different users proceed independently.
type FeedbackService struct {
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	profilesMu sync.RWMutex
	profiles   map[string]*domain.UserProfile

	popularityMu sync.RWMutex
	popularity   map[string]int // meal name -> aggregate selection count

	store  domain.FeedbackStore // optional; nil means in-memory only
	logger *zap.Logger
}

// NewFeedbackService creates a feedback service. The store may be nil.
func NewFeedbackService(store domain.FeedbackStore, logger *zap.Logger) *FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{
		locks:      make(map[string]*sync.Mutex),
		profiles:   make(map[string]*domain.UserProfile),
		popularity: make(map[string]int),
		store:      store,
		logger:     logger,
	}
}

// Record validates and applies one feedback event, appends it to the event log,
// and returns a copy of the updated profile. The profile is created lazily on
// the user's first event.
func (s *FeedbackService) Record(ctx context.Context, event *domain.FeedbackEvent) (*domain.UserProfile, error) {
	if event == nil || event.UserID == "" || event.MealName == "" {
		return nil, fmt.Errorf("%w: feedback event requires user and meal", domain.ErrInvalidInput)
	}
	if !domain.ValidEventKind(event.Kind) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFeedbackKind, event.Kind)
	}
	if event.Kind == domain.EventRated && (event.Rating < 1 || event.Rating > 5) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRating, event.Rating)
	}
	if event.Kind == domain.EventRemoved && strings.TrimSpace(event.Ingredient) == "" {
		return nil, fmt.Errorf("%w: removed event requires an ingredient name", domain.ErrInvalidInput)
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	lock := s.lockFor(event.UserID)
	lock.Lock()
	profile := s.profileFor(event.UserID)
	s.apply(profile, event)
	snapshot := profile.Clone()
	lock.Unlock()

	if event.Kind == domain.EventSelected {
		s.popularityMu.Lock()
		s.popularity[event.MealName]++
		s.popularityMu.Unlock()
	}

	if s.store != nil {
		if err := s.store.Append(ctx, event); err != nil {
			// The in-memory profile already advanced; surface the log failure.
			return snapshot, fmt.Errorf("append feedback event: %w", err)
		}
	}

	s.logger.Info("feedback recorded",
		zap.String("user", event.UserID),
		zap.String("meal", event.MealName),
		zap.String("kind", string(event.Kind)))
	return snapshot, nil
}

// Profile returns a copy of the user's profile, or false when the user has no
// recorded interactions yet.
func (s *FeedbackService) Profile(userID string) (*domain.UserProfile, bool) {
	s.profilesMu.RLock()
	profile, ok := s.profiles[userID]
	s.profilesMu.RUnlock()
	if !ok {
		return nil, false
	}

	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()
	return profile.Clone(), true
}

// Popularity returns the aggregate selection count recorded for a meal.
func (s *FeedbackService) Popularity(mealName string) int {
	s.popularityMu.RLock()
	defer s.popularityMu.RUnlock()
	return s.popularity[mealName]
}

// Insights summarizes a user's profile for the API layer.
func (s *FeedbackService) Insights(userID string) (*domain.ProfileInsights, error) {
	profile, ok := s.Profile(userID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
	}

	type mealCount struct {
		name  string
		count int
	}
	favorites := make([]mealCount, 0, len(profile.Meals))
	for name, stats := range profile.Meals {
		if stats.Selections > 0 {
			favorites = append(favorites, mealCount{name, stats.Selections})
		}
	}
	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].count != favorites[j].count {
			return favorites[i].count > favorites[j].count
		}
		return favorites[i].name < favorites[j].name
	})
	if len(favorites) > 3 {
		favorites = favorites[:3]
	}
	favoriteNames := make([]string, len(favorites))
	for i, f := range favorites {
		favoriteNames[i] = f.name
	}

	removed := make([]string, 0, len(profile.RemovedIngredients))
	for ing := range profile.RemovedIngredients {
		removed = append(removed, ing)
	}
	sort.Strings(removed)

	var avg float64
	if len(profile.Ratings) > 0 {
		sum := 0
		for _, r := range profile.Ratings {
			sum += r
		}
		avg = float64(sum) / float64(len(profile.Ratings))
	}

	return &domain.ProfileInsights{
		UserID:             userID,
		TotalInteractions:  profile.TotalInteractions,
		FavoriteMeals:      favoriteNames,
		RemovedIngredients: removed,
		AverageRating:      avg,
		LastUpdated:        profile.LastUpdated,
	}, nil
}

// Restore replays the persisted event log to rebuild profiles at startup.
func (s *FeedbackService) Restore(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	events, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("load feedback events: %w", err)
	}

	for i := range events {
		event := &events[i]
		if !domain.ValidEventKind(event.Kind) {
			continue // tolerate unknown kinds written by newer versions
		}
		lock := s.lockFor(event.UserID)
		lock.Lock()
		s.apply(s.profileFor(event.UserID), event)
		lock.Unlock()
		if event.Kind == domain.EventSelected {
			s.popularityMu.Lock()
			s.popularity[event.MealName]++
			s.popularityMu.Unlock()
		}
	}

	s.logger.Info("profiles restored from event log", zap.Int("events", len(events)))
	return nil
}

// apply mutates the profile for one event. Caller must hold the user's lock.
func (s *FeedbackService) apply(profile *domain.UserProfile, event *domain.FeedbackEvent) {
	switch event.Kind {
	case domain.EventViewed:
		profile.Stats(event.MealName).Views++
	case domain.EventSelected:
		profile.Stats(event.MealName).Selections++
	case domain.EventPurchased:
		profile.Stats(event.MealName).Purchases++
	case domain.EventCooked:
		profile.Stats(event.MealName).Cooks++
	case domain.EventRemoved:
		// Set semantics: removing the same ingredient twice is a no-op.
		profile.RemovedIngredients[strings.ToLower(strings.TrimSpace(event.Ingredient))] = true
	case domain.EventRated:
		profile.Ratings = append(profile.Ratings, event.Rating)
	}
	profile.TotalInteractions++
	profile.LastUpdated = event.Timestamp
}

// profileFor returns the stored profile, creating it lazily.
func (s *FeedbackService) profileFor(userID string) *domain.UserProfile {
	s.profilesMu.RLock()
	profile, ok := s.profiles[userID]
	s.profilesMu.RUnlock()
	if ok {
		return profile
	}

	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()
	if profile, ok = s.profiles[userID]; ok {
		return profile
	}
	profile = domain.NewUserProfile(userID)
	s.profiles[userID] = profile
	return profile
}

// lockFor returns the mutex serializing writes for one user.
func (s *FeedbackService) lockFor(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
