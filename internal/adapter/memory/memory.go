// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"exercisetracker/internal/domain"
)

// DB implements the domain repositories over in-process slices. Semantics
// match the PostgreSQL adapter.
type DB struct {
	mu        sync.Mutex
	users     []domain.User
	exercises []domain.Exercise
}

// New creates an empty in-memory store.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ExerciseRepository = (*DB)(nil)

// --- UserRepository ---

// CreateUser stores a new user with a generated id.
func (db *DB) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u := domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return &u, nil
}

// GetUserByID returns the user with the given id, or (nil, nil) when none
// exists.
func (db *DB) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.users {
		if db.users[i].ID == id {
			u := db.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// ListUsers returns every user in insertion order.
func (db *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.User, len(db.users))
	copy(out, db.users)
	return out, nil
}

// --- ExerciseRepository ---

// AddExercise stores a new exercise entry with a generated id.
func (db *DB) AddExercise(ctx context.Context, userID, description string, duration int, date time.Time) (*domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e := domain.Exercise{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        domain.DayOf(date),
		CreatedAt:   time.Now().UTC(),
	}
	db.exercises = append(db.exercises, e)
	return &e, nil
}

// ListExercises returns a user's entries matching the filter, sorted
// ascending by date with insertion order breaking ties.
func (db *DB) ListExercises(ctx context.Context, userID string, f domain.LogFilter) ([]domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Exercise, 0)
	for _, e := range db.exercises {
		if e.UserID != userID {
			continue
		}
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		result = append(result, e)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	if f.Limit > 0 && len(result) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}
