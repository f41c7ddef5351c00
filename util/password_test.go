package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	password := RandomString(10)

	hash, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.NoError(t, CheckPasswordHash(password, hash))

	wrong := RandomString(10)
	err = CheckPasswordHash(wrong, hash)
	require.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)

	// bcrypt salts, so the same password hashes differently each time.
	hash2, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}
