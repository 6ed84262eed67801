package auth

import "errors"

// Error taxonomy shared by every auth component. Components return these
// (possibly wrapped); the HTTP layer maps them to status codes and never
// exposes wrapped detail to clients.
var (
	ErrValidation         = errors.New("invalid input")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOAuthOnlyAccount   = errors.New("account has no password, use oauth provider")
	ErrTokenMissing       = errors.New("token required")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrNotFound           = errors.New("account not found")
	ErrRepository         = errors.New("repository unavailable")
	ErrProvider           = errors.New("oauth provider exchange failed")
)
