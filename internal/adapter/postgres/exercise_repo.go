package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"exercisetracker/internal/domain"
)

// AddExercise inserts a new exercise entry with a generated id.
func (d *DB) AddExercise(ctx context.Context, userID, description string, duration int, date time.Time) (*domain.Exercise, error) {
	e := domain.Exercise{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO exercises(id, user_id, description, duration, day, created_at) VALUES($1, $2, $3, $4, $5, $6);",
		e.ID, e.UserID, e.Description, e.Duration, e.Date, e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExercises returns a user's entries matching the filter, sorted
// ascending by date. Bounds are inclusive; a positive Limit keeps the
// earliest entries.
func (d *DB) ListExercises(ctx context.Context, userID string, f domain.LogFilter) ([]domain.Exercise, error) {
	query := "SELECT id, user_id, description, duration, day, created_at FROM exercises WHERE user_id=$1"
	args := []any{userID}

	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND day >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND day <= $%d", len(args))
	}
	query += " ORDER BY day ASC, created_at ASC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	query += ";"

	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Exercise, 0)
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		// DATE columns scan at UTC midnight already; normalize anyway so
		// both adapters agree.
		e.Date = domain.DayOf(e.Date)
		out = append(out, e)
	}
	return out, rows.Err()
}
