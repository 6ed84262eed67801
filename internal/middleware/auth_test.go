package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivam-rawat-4927/auth-service/internal/auth/token"
)

func newTestRouter(t *testing.T, tokens *token.Service) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		id, _ := AccountID(c)
		c.JSON(http.StatusOK, gin.H{"accountID": id})
	})
	return r
}

func newTokenService(t *testing.T, ttl time.Duration) *token.Service {
	t.Helper()
	svc, err := token.NewService("this-is-a-test-secret-with-32-bytes!", ttl)
	require.NoError(t, err)
	return svc
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := newTestRouter(t, newTokenService(t, token.DefaultTTL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token required"}`, w.Body.String())
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	router := newTestRouter(t, newTokenService(t, token.DefaultTTL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "just-a-token-no-scheme")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := newTestRouter(t, newTokenService(t, token.DefaultTTL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	tokens := newTokenService(t, time.Nanosecond)
	router := newTestRouter(t, tokens)

	expired, err := tokens.Issue("account-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := newTokenService(t, token.DefaultTTL)
	router := newTestRouter(t, tokens)

	valid, err := tokens.Issue("account-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accountID":"account-1"}`, w.Body.String())
}
