package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silverdollar/internal/model"
	"silverdollar/pkg/token"
)

type testJWTConfig struct{}

func (testJWTConfig) AccessTokenSecretKey() []byte        { return []byte("secret") }
func (testJWTConfig) AccessTokenDuration() time.Duration  { return time.Minute }
func (testJWTConfig) RefreshTokenDuration() time.Duration { return time.Hour }

func echoUserID(w http.ResponseWriter, r *http.Request) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(strconv.Itoa(id)))
}

func TestAuthPassesUserID(t *testing.T) {
	tok, err := token.GenerateAccessToken(&model.User{ID: 7}, []byte("secret"), time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()

	Auth(testJWTConfig{})(http.HandlerFunc(echoUserID)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Body.String())
}

func TestAuthRejects(t *testing.T) {
	h := Auth(testJWTConfig{})(http.HandlerFunc(echoUserID))

	for _, header := range []string{"", "Token abc", "Bearer abc"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}
