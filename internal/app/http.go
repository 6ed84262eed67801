package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/shivam-rawat-4927/auth-service/internal/auth/credentials"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/handler"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/provider"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/provider/github"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/provider/google"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/resolver"
	"github.com/shivam-rawat-4927/auth-service/internal/auth/token"
	"github.com/shivam-rawat-4927/auth-service/internal/config"
	"github.com/shivam-rawat-4927/auth-service/internal/middleware"
	"github.com/shivam-rawat-4927/auth-service/internal/repository"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	accounts := repository.NewAccountRepository(infra.DB)
	credentialService := credentials.NewService(accounts)
	identityResolver := resolver.NewAccountResolver(accounts)

	tokenService, err := token.NewService(cfg.JWTSecret, token.DefaultTTL)
	if err != nil {
		return nil, nil, err
	}

	registry, err := setupProviders(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	authHandler := handler.NewHandler(
		credentialService,
		identityResolver,
		registry,
		tokenService,
		accounts,
		cfg.FrontendURL,
	)

	// ----------------------------
	// Router
	// ----------------------------

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler.RegisterRoutes(router, middleware.RequireAuth(tokenService))

	return router, infra.Close, nil
}

// setupProviders registers every federation source with complete
// configuration. A partially configured provider is skipped, not fatal.
func setupProviders(ctx context.Context, cfg config.Config) (*provider.Registry, error) {
	var list []provider.OAuthProvider

	if cfg.Google.Enabled() {
		googleProvider, err := google.New(
			ctx,
			cfg.Google.ClientID,
			cfg.Google.ClientSecret,
			cfg.Google.RedirectURL,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, googleProvider)
	}

	if cfg.Github.Enabled() {
		githubProvider, err := github.New(
			cfg.Github.ClientID,
			cfg.Github.ClientSecret,
			cfg.Github.RedirectURL,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, githubProvider)
	}

	registry := provider.NewRegistry(list...)
	log.Info().Strs("providers", registry.Names()).Msg("oauth providers registered")

	return registry, nil
}
