// Package handler exposes the REST surface of the auth service.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/credentials"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/provider"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/resolver"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/token"
	"github.com/shivam-rawat-4927/auth-service/internal/repository"
)

type Handler struct {
	credentials *credentials.Service
	resolver    resolver.Resolver
	providers   *provider.Registry
	tokens      *token.Service
	accounts    repository.AccountRepository
	frontendURL string
}

func NewHandler(
	credentialService *credentials.Service,
	identityResolver resolver.Resolver,
	registry *provider.Registry,
	tokens *token.Service,
	accounts repository.AccountRepository,
	frontendURL string,
) *Handler {
	return &Handler{
		credentials: credentialService,
		resolver:    identityResolver,
		providers:   registry,
		tokens:      tokens,
		accounts:    accounts,
		frontendURL: frontendURL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	api := r.Group("/api/auth")

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.GET("/profile", requireAuth, h.Profile)

	api.GET("/:provider", h.OAuthLogin)
	api.GET("/:provider/callback", h.OAuthCallback)
}

// respondError maps the error taxonomy to status codes and user-safe
// messages. Internal detail is logged, never returned.
func respondError(c *gin.Context, err error, serverMsg string) {
	switch {
	case errors.Is(err, auth.ErrDuplicateAccount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, auth.ErrOAuthOnlyAccount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Login with OAuth provider"})
	case errors.Is(err, auth.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, auth.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		log.Error().Err(err).Msg(serverMsg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": serverMsg})
	}
}
