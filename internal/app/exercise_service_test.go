package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercisetracker/internal/app"
	"exercisetracker/internal/domain"
)

type mockExerciseRepo struct {
	addFn  func(ctx context.Context, userID, description string, duration int, date time.Time) (*domain.Exercise, error)
	listFn func(ctx context.Context, userID string, f domain.LogFilter) ([]domain.Exercise, error)
}

func (m *mockExerciseRepo) AddExercise(ctx context.Context, userID, description string, duration int, date time.Time) (*domain.Exercise, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, description, duration, date)
	}
	return &domain.Exercise{ID: "e1", UserID: userID, Description: description, Duration: duration, Date: date}, nil
}

func (m *mockExerciseRepo) ListExercises(ctx context.Context, userID string, f domain.LogFilter) ([]domain.Exercise, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, f)
	}
	return nil, nil
}

func knownUserRepo() *mockUserRepo {
	return &mockUserRepo{
		getFn: func(_ context.Context, id string) (*domain.User, error) {
			if id == "u1" {
				return &domain.User{ID: "u1", Username: "alice"}, nil
			}
			return nil, nil
		},
	}
}

func TestAddExercise_UserNotFound(t *testing.T) {
	called := false
	repo := &mockExerciseRepo{
		addFn: func(_ context.Context, _, _ string, _ int, _ time.Time) (*domain.Exercise, error) {
			called = true
			return nil, nil
		},
	}
	svc := app.NewExerciseService(knownUserRepo(), repo)

	_, _, err := svc.Add(context.Background(), "nope", "run", "30", "")
	assert.ErrorIs(t, err, app.ErrUserNotFound)
	assert.False(t, called, "nothing should be persisted")
}

func TestAddExercise_Validation(t *testing.T) {
	tests := []struct {
		name        string
		description string
		duration    string
		date        string
		wantErr     error
	}{
		{"invalid date", "run", "30", "not-a-date", app.ErrInvalidDate},
		{"impossible date", "run", "30", "1990-13-40", app.ErrInvalidDate},
		{"non-numeric duration", "run", "soon", "1990-01-01", app.ErrInvalidDuration},
		{"empty duration", "run", "", "1990-01-01", app.ErrInvalidDuration},
		{"empty description", "", "30", "1990-01-01", app.ErrDescriptionRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := app.NewExerciseService(knownUserRepo(), &mockExerciseRepo{})
			_, _, err := svc.Add(context.Background(), "u1", tc.description, tc.duration, tc.date)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddExercise_CoercesNumericStringDuration(t *testing.T) {
	var gotDuration int
	repo := &mockExerciseRepo{
		addFn: func(_ context.Context, userID, description string, duration int, date time.Time) (*domain.Exercise, error) {
			gotDuration = duration
			return &domain.Exercise{UserID: userID, Description: description, Duration: duration, Date: date}, nil
		},
	}
	svc := app.NewExerciseService(knownUserRepo(), repo)

	user, entry, err := svc.Add(context.Background(), "u1", "test run", "30", "1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, 30, gotDuration)
	assert.Equal(t, 30, entry.Duration)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), entry.Date)
}

func TestAddExercise_DefaultsToToday(t *testing.T) {
	var gotDate time.Time
	repo := &mockExerciseRepo{
		addFn: func(_ context.Context, userID, description string, duration int, date time.Time) (*domain.Exercise, error) {
			gotDate = date
			return &domain.Exercise{UserID: userID, Date: date}, nil
		},
	}
	svc := app.NewExerciseService(knownUserRepo(), repo)

	_, _, err := svc.Add(context.Background(), "u1", "run", "30", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Today(), gotDate)
}

func TestLog_UserNotFound(t *testing.T) {
	svc := app.NewExerciseService(knownUserRepo(), &mockExerciseRepo{})
	_, _, err := svc.Log(context.Background(), "nope", "", "", 0)
	assert.ErrorIs(t, err, app.ErrUserNotFound)
}

func TestLog_FilterConstruction(t *testing.T) {
	jan1 := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(1990, time.December, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		from, to  string
		limit     int
		wantFrom  *time.Time
		wantTo    *time.Time
		wantLimit int
	}{
		{"no filters", "", "", 0, nil, nil, 0},
		{"both bounds", "1990-01-01", "1990-12-31", 0, &jan1, &dec31, 0},
		{"unparsable from discarded", "garbage", "1990-12-31", 0, nil, &dec31, 0},
		{"unparsable to discarded", "1990-01-01", "garbage", 0, &jan1, nil, 0},
		{"limit applies", "", "", 5, nil, nil, 5},
		{"negative limit ignored", "", "", -3, nil, nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got domain.LogFilter
			repo := &mockExerciseRepo{
				listFn: func(_ context.Context, _ string, f domain.LogFilter) ([]domain.Exercise, error) {
					got = f
					return nil, nil
				},
			}
			svc := app.NewExerciseService(knownUserRepo(), repo)

			_, _, err := svc.Log(context.Background(), "u1", tc.from, tc.to, tc.limit)
			require.NoError(t, err, "lenient parsing must never reject")
			assert.Equal(t, tc.wantFrom, got.From)
			assert.Equal(t, tc.wantTo, got.To)
			assert.Equal(t, tc.wantLimit, got.Limit)
		})
	}
}

func TestLog_ReturnsUserAndEntries(t *testing.T) {
	repo := &mockExerciseRepo{
		listFn: func(_ context.Context, userID string, _ domain.LogFilter) ([]domain.Exercise, error) {
			return []domain.Exercise{
				{ID: "e1", UserID: userID, Description: "run", Duration: 30},
				{ID: "e2", UserID: userID, Description: "swim", Duration: 45},
			}, nil
		},
	}
	svc := app.NewExerciseService(knownUserRepo(), repo)

	user, entries, err := svc.Log(context.Background(), "u1", "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Len(t, entries, 2)
}
