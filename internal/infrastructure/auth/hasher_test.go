package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	require.NoError(t, h.Verify("pw123", hash))
}

func TestBcryptPasswordHasher_SingleCharDifference(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)

	require.Error(t, h.Verify("pw124", hash))
	require.Error(t, h.Verify("Pw123", hash))
	require.Error(t, h.Verify("", hash))
}

func TestBcryptPasswordHasher_MalformedHashIsGenericError(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	err := h.Verify("pw123", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.EqualError(t, err, "password verification failed")
}

func TestNewBcryptPasswordHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptPasswordHasher(99)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
