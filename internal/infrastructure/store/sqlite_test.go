package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawalalx/foodplan/internal/domain"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func testEvent(id, user, meal string, kind domain.EventKind, at time.Time) *domain.FeedbackEvent {
	return &domain.FeedbackEvent{
		ID:        id,
		UserID:    user,
		MealName:  meal,
		Kind:      kind,
		Timestamp: at,
	}
}

func TestSQLiteStore_AppendAndQuery(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	events := []*domain.FeedbackEvent{
		testEvent("e1", "u1", "Egusi Soup", domain.EventSelected, base),
		testEvent("e2", "u2", "Jollof Rice", domain.EventViewed, base.Add(time.Second)),
		testEvent("e3", "u1", "Egusi Soup", domain.EventCooked, base.Add(2*time.Second)),
	}
	for _, e := range events {
		require.NoError(t, s.Append(ctx, e))
	}

	t.Run("per-user events in insertion order", func(t *testing.T) {
		got, err := s.Events(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "e1", got[0].ID)
		assert.Equal(t, "e3", got[1].ID)
		assert.Equal(t, domain.EventCooked, got[1].Kind)
		assert.True(t, got[0].Timestamp.Equal(base))
	})

	t.Run("all events for replay", func(t *testing.T) {
		got, err := s.All(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"e1", "e2", "e3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("unknown user yields no events", func(t *testing.T) {
		got, err := s.Events(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSQLiteStore_RoundTripsOptionalFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rated := &domain.FeedbackEvent{
		ID: "e1", UserID: "u1", MealName: "Egusi Soup",
		Kind: domain.EventRated, Rating: 4,
		Timestamp: time.Now().UTC(),
	}
	removed := &domain.FeedbackEvent{
		ID: "e2", UserID: "u1", MealName: "Egusi Soup",
		Kind: domain.EventRemoved, Ingredient: "groundnut",
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, s.Append(ctx, rated))
	require.NoError(t, s.Append(ctx, removed))

	got, err := s.Events(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Rating)
	assert.Equal(t, "groundnut", got[1].Ingredient)
}

func TestSQLiteStore_DuplicateIDRejected(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	e := testEvent("e1", "u1", "Egusi Soup", domain.EventSelected, time.Now().UTC())

	require.NoError(t, s.Append(ctx, e))
	assert.Error(t, s.Append(ctx, e))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, testEvent("e1", "u1", "Egusi Soup", domain.EventSelected, time.Now().UTC())))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}
