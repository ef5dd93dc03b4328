package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercisetracker/internal/app"
	"exercisetracker/internal/domain"
)

type mockUserRepo struct {
	createFn func(ctx context.Context, username string) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username)
	}
	return &domain.User{ID: "u1", Username: username}, nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestCreateUser_TrimsUsername(t *testing.T) {
	var stored string
	repo := &mockUserRepo{
		createFn: func(_ context.Context, username string) (*domain.User, error) {
			stored = username
			return &domain.User{ID: "u1", Username: username}, nil
		},
	}
	svc := app.NewUserService(repo)

	user, err := svc.Create(context.Background(), "  alice  ")
	require.NoError(t, err)
	assert.Equal(t, "alice", stored)
	assert.Equal(t, "alice", user.Username)
}

func TestCreateUser_RejectsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			repo := &mockUserRepo{
				createFn: func(_ context.Context, _ string) (*domain.User, error) {
					called = true
					return nil, nil
				},
			}
			svc := app.NewUserService(repo)

			_, err := svc.Create(context.Background(), tc.username)
			assert.ErrorIs(t, err, app.ErrUsernameRequired)
			assert.False(t, called, "nothing should be persisted")
		})
	}
}

func TestCreateUser_DuplicateUsernamesAllowed(t *testing.T) {
	n := 0
	repo := &mockUserRepo{
		createFn: func(_ context.Context, username string) (*domain.User, error) {
			n++
			return &domain.User{ID: string(rune('a' + n)), Username: username}, nil
		},
	}
	svc := app.NewUserService(repo)

	first, err := svc.Create(context.Background(), "bob")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "bob")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestListUsers(t *testing.T) {
	repo := &mockUserRepo{
		listFn: func(_ context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u1", Username: "alice"},
				{ID: "u2", Username: "bob"},
			}, nil
		},
	}
	svc := app.NewUserService(repo)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
}
