// Package middleware provides request authentication for protected routes.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/token"
)

// accountIDKey is the gin context key carrying the authenticated account id.
const accountIDKey = "accountID"

// AccountID extracts the authenticated account identifier set by RequireAuth.
func AccountID(c *gin.Context) (string, bool) {
	id := c.GetString(accountIDKey)
	return id, id != ""
}

// RequireAuth verifies the bearer token on each request. Verification is
// self-contained: no repository access happens here, handlers that need the
// full account load it themselves.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := tokens.Verify(bearerToken(c))
		if err != nil {
			if errors.Is(err, auth.ErrTokenMissing) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
