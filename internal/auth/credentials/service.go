// Package credentials implements email/password registration and login.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
	"github.com/shivam-rawat-4927/auth-service/internal/models"
	"github.com/shivam-rawat-4927/auth-service/internal/repository"
)

// RegisterInput carries the fields accepted at registration. Email, username
// and password are mandatory; names are optional.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

type Service struct {
	accounts repository.AccountRepository
}

func NewService(accounts repository.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

// Register creates a local-credential account. The existence check is a fast
// path; a concurrent registration that slips past it is rejected by the
// repository's unique constraints and reported the same way.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Account, error) {
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, auth.ErrValidation
	}

	_, err := s.accounts.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err == nil {
		return nil, auth.ErrDuplicateAccount
	}
	if !errors.Is(err, auth.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrValidation, err)
	}

	account := &models.Account{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: &hash,
		Provider:     models.ProviderLocal,
	}
	if in.FirstName != "" {
		account.FirstName = &in.FirstName
	}
	if in.LastName != "" {
		account.LastName = &in.LastName
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login authenticates an email/password pair. An unknown email and a wrong
// password both return auth.ErrInvalidCredentials so callers cannot tell the
// cases apart and enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, auth.ErrValidation
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.HasPassword() {
		return nil, auth.ErrOAuthOnlyAccount
	}

	if err := VerifyPassword(*account.PasswordHash, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return account, nil
}
