package resolver

import (
	"context"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
	"github.com/shivam-rawat-4927/auth-service/internal/models"
)

// Resolver determines which account an external identity belongs to.
// It is the ONLY place where identity-to-account mapping logic lives.
type Resolver interface {
	Resolve(ctx context.Context, profile *auth.Profile) (*models.Account, error)
}
