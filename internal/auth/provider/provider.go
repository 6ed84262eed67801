package provider

import (
	"context"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
)

// OAuthProvider defines the contract every external auth provider must
// implement. Implementations return identity facts only and must not perform
// account creation, linking, or token issuance.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "google", "github").
	Name() string

	// AuthCodeURL returns the OAuth authorization URL for the given
	// CSRF state parameter.
	AuthCodeURL(state string) string

	// ExchangeCode exchanges the authorization code for provider
	// credentials and returns a normalized profile. No auth decisions
	// are made here.
	ExchangeCode(ctx context.Context, code string) (*auth.Profile, error)
}
