// Package resolver maps normalized external identities onto accounts:
// find, link, or create.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
	"github.com/shivam-rawat-4927/auth-service/internal/models"
	"github.com/shivam-rawat-4927/auth-service/internal/repository"
	"github.com/shivam-rawat-4927/auth-service/internal/utils"
)

// maxUsernameAttempts bounds retries when a synthesized username is taken.
const maxUsernameAttempts = 3

// AccountResolver resolves identities against the account repository.
type AccountResolver struct {
	accounts repository.AccountRepository
}

func NewAccountResolver(accounts repository.AccountRepository) *AccountResolver {
	return &AccountResolver{accounts: accounts}
}

// Resolve locates the account an external profile belongs to.
//
//  1. Match by email OR by (provider, subject id).
//  2. A match without a linked provider gets the provider identity and avatar
//     backfilled: this merges a pre-existing local account with a later OAuth
//     login on the same email.
//  3. A match that is already linked is a repeat login; return it unchanged.
//  4. No match creates a new account with a synthesized username and no
//     password hash.
func (r *AccountResolver) Resolve(ctx context.Context, profile *auth.Profile) (*models.Account, error) {
	if profile == nil || profile.SubjectID == "" || profile.Provider == "" {
		return nil, auth.ErrValidation
	}

	email := profile.Email
	if email == "" {
		email = placeholderEmail(profile)
	}

	account, err := r.accounts.FindByEmailOrProviderID(ctx, email, profile.Provider, profile.SubjectID)
	switch {
	case err == nil:
		if account.Linked() {
			return account, nil
		}
		return r.link(ctx, account, profile)
	case errors.Is(err, auth.ErrNotFound):
		return r.create(ctx, email, profile)
	default:
		return nil, err
	}
}

func (r *AccountResolver) link(ctx context.Context, account *models.Account, profile *auth.Profile) (*models.Account, error) {
	account.Provider = profile.Provider
	subjectID := profile.SubjectID
	account.ProviderID = &subjectID
	if profile.Avatar != "" {
		avatar := profile.Avatar
		account.Avatar = &avatar
	}

	if err := r.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	log.Info().
		Str("account_id", account.ID).
		Str("provider", profile.Provider).
		Msg("linked provider identity to existing account")

	return account, nil
}

func (r *AccountResolver) create(ctx context.Context, email string, profile *auth.Profile) (*models.Account, error) {
	suffix := shortSuffix(profile.SubjectID)

	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		account := &models.Account{
			Email:    email,
			Username: synthesizeUsername(email, suffix),
			Provider: profile.Provider,
		}
		subjectID := profile.SubjectID
		account.ProviderID = &subjectID
		if profile.FirstName != "" {
			firstName := profile.FirstName
			account.FirstName = &firstName
		}
		if profile.LastName != "" {
			lastName := profile.LastName
			account.LastName = &lastName
		}
		if profile.Avatar != "" {
			avatar := profile.Avatar
			account.Avatar = &avatar
		}

		err := r.accounts.Create(ctx, account)
		if err == nil {
			log.Info().
				Str("account_id", account.ID).
				Str("provider", profile.Provider).
				Msg("created account from oauth profile")
			return account, nil
		}
		if !errors.Is(err, auth.ErrDuplicateAccount) {
			return nil, err
		}

		// Username taken; try again with a random suffix. A duplicate email
		// keeps failing and exits through the bounded retry below.
		suffix = utils.RandomString(3)
	}

	return nil, auth.ErrDuplicateAccount
}

// synthesizeUsername derives a username from the email local part plus a
// short suffix that keeps collisions unlikely.
func synthesizeUsername(email, suffix string) string {
	local := strings.SplitN(email, "@", 2)[0]
	return local + "_" + suffix
}

func shortSuffix(subjectID string) string {
	if len(subjectID) > 4 {
		return subjectID[len(subjectID)-4:]
	}
	return subjectID
}

// placeholderEmail fills in a deterministic address when the provider
// withholds the real one (e.g. a GitHub account with a private email).
func placeholderEmail(profile *auth.Profile) string {
	local := profile.Login
	if local == "" {
		local = profile.SubjectID
	}
	return fmt.Sprintf("%s@%s.local", local, profile.Provider)
}
