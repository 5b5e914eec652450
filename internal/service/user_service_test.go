package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dom "github.com/techpark-119/Todo-App/internal/domain"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(newFixture(t).users, nil).WithCost(bcrypt.MinCost)
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")))

	got, err := svc.ValidateCredentials(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserService_BadCredentials(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.ValidateCredentials(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, dom.ErrInvalidCredentials)

	_, err = svc.ValidateCredentials(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, dom.ErrInvalidCredentials, "unknown email looks like a wrong password")

	_, err = svc.ValidateCredentials(ctx, "", "")
	assert.ErrorIs(t, err, dom.ErrInvalidCredentials)
}

func TestUserService_RegisterErrors(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "")
	assert.ErrorIs(t, err, dom.ErrValidation)

	_, err = svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "alice", "new@example.com", "pw")
	assert.ErrorIs(t, err, dom.ErrUserExists)
}
