package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silverdollar/internal/model"
)

var secret = []byte("test-secret")

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: 42}, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestVerifyTokenRejects(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: 1}, secret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)

	expired, err := GenerateAccessToken(&model.User{ID: 1}, secret, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(expired, secret)
	assert.Error(t, err)

	_, err = VerifyToken("garbage", secret)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	tok, err := GenerateRefreshToken()
	require.NoError(t, err)

	hash := HashRefreshToken(tok)
	assert.True(t, VerifyRefreshToken(tok, hash))
	assert.False(t, VerifyRefreshToken(tok+"x", hash))
}
