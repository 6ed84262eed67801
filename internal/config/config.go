// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"os"
)

// OAuthClient holds one federation source's credentials. A provider is only
// registered when all three fields are present.
type OAuthClient struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

func (c OAuthClient) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURL != ""
}

type Config struct {
	AppPort     string
	Environment string

	DatabaseDSN string

	// JWTSecret signs every issued token. There is no default: a missing
	// secret refuses startup rather than falling back to a guessable key.
	JWTSecret string

	// FrontendURL is where OAuth callbacks redirect with the token.
	FrontendURL string

	Google OAuthClient
	Github OAuthClient
}

func Load() Config {
	cfg := Config{
		AppPort:     getEnv("APP_PORT", "5001"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		Google: OAuthClient{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		},
		Github: OAuthClient{
			ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
			ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GITHUB_REDIRECT_URL"),
		},
	}

	return cfg
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
