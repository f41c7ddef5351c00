package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/devanshioza/skillfolio/util"
)

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	userID := uuid.New()

	tokenString, err := maker.CreateToken(userID, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	gotID, err := maker.VerifyToken(tokenString)
	require.NoError(t, err)
	require.Equal(t, userID, gotID)
}

func TestExpiredJWTToken(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	tokenString, err := maker.CreateToken(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(tokenString)
	require.Error(t, err)
}

func TestTokenSignedWithDifferentKey(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	other, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	tokenString, err := other.CreateToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(tokenString)
	require.Error(t, err)
}

func TestShortSecretKeyRejected(t *testing.T) {
	_, err := NewJWTMaker("too-short")
	require.Error(t, err)
}
