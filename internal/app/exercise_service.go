package app

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"exercisetracker/internal/domain"
)

// Sentinel errors mapped to client responses by the HTTP adapter. Messages
// are part of the API contract.
var (
	ErrUserNotFound        = errors.New("User not found")
	ErrInvalidDate         = errors.New("Invalid date")
	ErrInvalidDuration     = errors.New("Invalid duration")
	ErrDescriptionRequired = errors.New("description required")
)

// ExerciseService encapsulates the exercise ledger use cases.
type ExerciseService struct {
	users     domain.UserRepository
	exercises domain.ExerciseRepository
}

// NewExerciseService creates an ExerciseService backed by the given
// repositories.
func NewExerciseService(users domain.UserRepository, exercises domain.ExerciseRepository) *ExerciseService {
	return &ExerciseService{users: users, exercises: exercises}
}

// Add records an exercise for an existing user and returns the owning user
// along with the stored entry. Duration arrives as a string and is coerced
// to integer minutes. An empty date defaults to today; a supplied date must
// parse as YYYY-MM-DD or the entry is rejected.
//
// The existence check and the insert are two store operations, not a
// transaction. Users are never deleted, so the gap is unobservable.
func (s *ExerciseService) Add(ctx context.Context, userID, description, duration, date string) (*domain.User, *domain.Exercise, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if strings.TrimSpace(description) == "" {
		return nil, nil, ErrDescriptionRequired
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return nil, nil, ErrInvalidDuration
	}

	day := domain.Today()
	if date != "" {
		day, err = domain.ParseDay(date)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
	}

	entry, err := s.exercises.AddExercise(ctx, user.ID, description, minutes, day)
	if err != nil {
		return nil, nil, err
	}
	return user, entry, nil
}

// Log returns a user's exercise log filtered by the inclusive from/to
// calendar dates and capped to limit entries. Unlike Add, a from/to value
// that fails to parse is discarded rather than rejected; the looser
// treatment here is part of the API contract.
func (s *ExerciseService) Log(ctx context.Context, userID, from, to string, limit int) (*domain.User, []domain.Exercise, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	var f domain.LogFilter
	if from != "" {
		if d, err := domain.ParseDay(from); err == nil {
			f.From = &d
		}
	}
	if to != "" {
		if d, err := domain.ParseDay(to); err == nil {
			f.To = &d
		}
	}
	if limit > 0 {
		f.Limit = limit
	}

	entries, err := s.exercises.ListExercises(ctx, user.ID, f)
	if err != nil {
		return nil, nil, err
	}
	return user, entries, nil
}
