package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()
	hasher := NewBcryptHasher(bcrypt.MinCost) // MinCost keeps the test fast
	verifier := NewBcryptVerifier()

	hashed, err := hasher.Hash("opensesame")
	require.NoError(t, err)
	assert.NotEqual(t, "opensesame", hashed, "hash must not be the plaintext")

	assert.NoError(t, verifier.Compare(hashed, "opensesame"))
	assert.Error(t, verifier.Compare(hashed, "wrongpassword"))
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "opensesame"))
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	t.Parallel()
	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
