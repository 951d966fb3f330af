package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiirud/skyport/internal/auth"
	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

type memUsers struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newMemUsers() *memUsers {
	return &memUsers{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
	}
}

func (m *memUsers) CreateUser(ctx context.Context, email, passwordHash string, isStaff bool) (*domain.User, error) {
	if _, ok := m.byEmail[email]; ok {
		return nil, repository.ErrConflict
	}
	m.nextID++
	u := &domain.User{
		ID:           m.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		IsStaff:      isStaff,
		CreatedAt:    time.Now(),
	}
	m.byEmail[email] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUsers) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

var _ repository.UserStore = (*memUsers)(nil)

func newTestService() (*Service, *memUsers) {
	store := newMemUsers()
	tokens := auth.NewTokenManager("test-secret", time.Minute)
	return New(store, tokens), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Pilot@Example.com", "long-enough-pass")
	require.NoError(t, err)
	assert.Equal(t, "pilot@example.com", u.Email)
	assert.False(t, u.IsStaff)
	assert.NotEqual(t, "long-enough-pass", u.PasswordHash)

	sess, err := svc.Login(ctx, "pilot@example.com", "long-enough-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, u.ID, sess.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@example.com", "long-enough-pass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@example.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "long-enough-pass")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "ok@example.com", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@example.com", "long-enough-pass")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email yields the same error as a wrong password.
	_, err = svc.Login(ctx, "ghost@example.com", "long-enough-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
