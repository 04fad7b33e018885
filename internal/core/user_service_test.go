package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"parlour-backend-go/internal/db"
	"parlour-backend-go/internal/models"
)

// fakeUserRepo keeps user records in memory, keyed by ID, unique by email.
type fakeUserRepo struct {
	users   map[string]*models.User
	nextID  int
	inserts int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) (string, error) {
	f.nextID++
	f.inserts++
	user.ID = fmt.Sprintf("u%d", f.nextID)
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with email '%s' not found: %w", email, db.ErrNotFound)
}

func (f *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id, role string) error {
	u, ok := f.users[id]
	if !ok {
		return db.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func TestRegister_CreatesMember(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, created, err := svc.Register(context.Background(), models.CreateUserRequest{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, models.RoleMember, user.Role)
	require.NotEmpty(t, user.ID)
}

func TestRegister_SecondAttemptIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	first, created, err := svc.Register(context.Background(), models.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Register(context.Background(), models.CreateUserRequest{Email: "a@x.com", Name: "Other"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, repo.inserts)
}

func TestIsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, _, err := svc.Register(context.Background(), models.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	// Fresh member is not an admin; unknown email is not an error.
	isAdmin, err := svc.IsAdmin(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.False(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	require.False(t, isAdmin)
}

func TestPromoteThenIsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, _, err := svc.Register(context.Background(), models.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Promote(context.Background(), user.ID))

	isAdmin, err := svc.IsAdmin(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.True(t, isAdmin)
}

func TestPromote_UnknownID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.Promote(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemove(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, _, err := svc.Register(context.Background(), models.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), user.ID))
	require.ErrorIs(t, svc.Remove(context.Background(), user.ID), ErrUserNotFound)
}
