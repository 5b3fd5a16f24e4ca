package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lawalalx/foodplan/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS feedback_events (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	meal_name  TEXT NOT NULL,
	kind       TEXT NOT NULL,
	rating     INTEGER NOT NULL DEFAULT 0,
	ingredient TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_feedback_user ON feedback_events(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_feedback_meal ON feedback_events(meal_name);
`

// SQLiteStore persists feedback events so profiles survive restarts. Events
// are append-only; profiles are rebuilt by replaying them in insertion order.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and applies the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// modernc sqlite serializes writes; a single connection avoids lock errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append persists a single feedback event.
func (s *SQLiteStore) Append(ctx context.Context, event *domain.FeedbackEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback_events (id, user_id, meal_name, kind, rating, ingredient, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.UserID, event.MealName, string(event.Kind),
		event.Rating, event.Ingredient, event.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert feedback event: %w", err)
	}
	return nil
}

// Events returns a user's feedback events in insertion order.
func (s *SQLiteStore) Events(ctx context.Context, userID string) ([]domain.FeedbackEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, meal_name, kind, rating, ingredient, created_at
		 FROM feedback_events WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query feedback events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// All returns every feedback event in insertion order, for startup replay.
func (s *SQLiteStore) All(ctx context.Context) ([]domain.FeedbackEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, meal_name, kind, rating, ingredient, created_at
		 FROM feedback_events ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query feedback events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanEvents(rows *sql.Rows) ([]domain.FeedbackEvent, error) {
	var events []domain.FeedbackEvent
	for rows.Next() {
		var (
			event     domain.FeedbackEvent
			kind      string
			createdAt string
		)
		if err := rows.Scan(&event.ID, &event.UserID, &event.MealName, &kind,
			&event.Rating, &event.Ingredient, &createdAt); err != nil {
			return nil, fmt.Errorf("scan feedback event: %w", err)
		}
		event.Kind = domain.EventKind(kind)
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp: %w", err)
		}
		event.Timestamp = ts
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback events: %w", err)
	}
	return events, nil
}
