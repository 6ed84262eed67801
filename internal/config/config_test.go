package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_DSN", "postgres://localhost/auth")

	cfg := Load()

	assert.Equal(t, "5001", cfg.AppPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := Config{DatabaseDSN: "postgres://localhost/auth"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := Config{JWTSecret: "s3cret"}
	assert.Error(t, cfg.Validate())
}

func TestOAuthClient_Enabled(t *testing.T) {
	assert.False(t, OAuthClient{}.Enabled())
	assert.False(t, OAuthClient{ClientID: "id", ClientSecret: "secret"}.Enabled())
	assert.True(t, OAuthClient{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:5001/api/auth/google/callback",
	}.Enabled())
}
