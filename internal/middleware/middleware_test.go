package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questify/questify/internal/auth"
)

func TestAuthMiddlewareValidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := tokens.Issue("user-123", "alice")
	require.NoError(t, err)

	var gotUserID string
	handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r)
	}))

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-123", gotUserID)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	cases := map[string]string{
		"no header":     "",
		"not bearer":    "Basic abc123",
		"invalid token": "Bearer not-a-token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/users/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestUserIDWithoutAuth(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, UserID(req))
}
