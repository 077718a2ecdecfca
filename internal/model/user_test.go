package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserClaimsRoundTrip(t *testing.T) {
	now := time.Now()
	claims := NewUserClaims(42, "silverdollar", now, now.Add(time.Minute))

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "silverdollar", claims.Issuer)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestUserClaimsRejectsBadSubject(t *testing.T) {
	for _, subject := range []string{"", "abc", "0", "-3"} {
		var claims UserClaims
		claims.Subject = subject
		_, err := claims.UserID()
		assert.Error(t, err, subject)
	}
}
