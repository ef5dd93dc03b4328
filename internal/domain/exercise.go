package domain

import (
	"context"
	"time"
)

// Exercise is a single ledger entry. Date carries calendar-day precision
// only (UTC midnight); CreatedAt is store bookkeeping.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LogFilter bounds a log query. Nil bounds are open; both bounds are
// inclusive. Limit <= 0 means no cap.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ExerciseRepository is the port for exercise persistence. The store does
// not enforce that UserID references an existing user; that check belongs
// to the ledger at write time.
type ExerciseRepository interface {
	AddExercise(ctx context.Context, userID, description string, duration int, date time.Time) (*Exercise, error)
	// ListExercises returns a user's entries matching the filter, sorted
	// ascending by date.
	ListExercises(ctx context.Context, userID string, f LogFilter) ([]Exercise, error)
}
