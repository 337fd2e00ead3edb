package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		user, err := env.userService.Register(ctx, "alice", "alice@example.com", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.PasswordHash, "hash must not leave the service")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := env.userService.Register(ctx, "someone-else", "alice@example.com", "secret")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := env.userService.Register(ctx, "alice", "other@example.com", "secret")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing fields are invalid", func(t *testing.T) {
		_, err := env.userService.Register(ctx, "bob", "bob@example.com", "")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, err := env.userService.Register(ctx, "alice", "alice@example.com", "secret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := env.userService.Authenticate(ctx, "alice@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.userService.Authenticate(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := env.userService.Authenticate(ctx, "nobody@example.com", "secret")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustRegister(t, "alice")
	env.mustCreateArticle(t, alice, "First")
	env.mustCreateArticle(t, alice, "Second")

	t.Run("profile carries the user and their articles", func(t *testing.T) {
		profile, err := env.userService.GetProfile(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, profile.User.ID)
		assert.Empty(t, profile.User.PasswordHash)
		assert.Len(t, profile.Articles, 2)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := env.userService.GetProfile(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
