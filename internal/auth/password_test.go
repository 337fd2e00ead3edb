package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	t.Run("verify succeeds for the hashed password", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)
		assert.True(t, hasher.Verify("correct horse battery staple", hash))
	})

	t.Run("verify fails for a different password", func(t *testing.T) {
		hash, err := hasher.Hash("password-one")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("password-two", hash))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("same input")
		require.NoError(t, err)
		second, err := hasher.Hash("same input")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("malformed hash is a verification failure", func(t *testing.T) {
		assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
		assert.False(t, hasher.Verify("anything", ""))
	})

	t.Run("out-of-range cost falls back to the default", func(t *testing.T) {
		h := NewHasher(9999)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})
}
