package resolver

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
	"github.com/shivam-rawat-4927/auth-service/internal/db"
	"github.com/shivam-rawat-4927/auth-service/internal/models"
	"github.com/shivam-rawat-4927/auth-service/internal/repository"
)

func newTestResolver(t *testing.T) (*AccountResolver, repository.AccountRepository) {
	t.Helper()

	gdb, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "auth.db")),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	accounts := repository.NewAccountRepository(gdb)
	return NewAccountResolver(accounts), accounts
}

func googleProfile() *auth.Profile {
	return &auth.Profile{
		Provider:  models.ProviderGoogle,
		SubjectID: "109876541234",
		Email:     "alice@x.com",
		FirstName: "Alice",
		LastName:  "Doe",
		Avatar:    "https://lh3.example/alice.png",
	}
}

func TestResolve_CreatesAccountOnFirstSighting(t *testing.T) {
	r, _ := newTestResolver(t)

	account, err := r.Resolve(context.Background(), googleProfile())
	require.NoError(t, err)

	assert.Equal(t, "alice@x.com", account.Email)
	assert.Equal(t, models.ProviderGoogle, account.Provider)
	require.NotNil(t, account.ProviderID)
	assert.Equal(t, "109876541234", *account.ProviderID)
	assert.False(t, account.HasPassword())

	// username: email local part + short subject-derived suffix
	assert.Equal(t, "alice_1234", account.Username)
}

func TestResolve_Idempotent(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	first, err := r.Resolve(ctx, googleProfile())
	require.NoError(t, err)

	second, err := r.Resolve(ctx, googleProfile())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Username, second.Username)
}

func TestResolve_LinksExistingLocalAccount(t *testing.T) {
	r, accounts := newTestResolver(t)
	ctx := context.Background()

	hash := "digest"
	local := &models.Account{
		Email:        "alice@x.com",
		Username:     "alice",
		PasswordHash: &hash,
		Provider:     models.ProviderLocal,
	}
	require.NoError(t, accounts.Create(ctx, local))

	account, err := r.Resolve(ctx, googleProfile())
	require.NoError(t, err)

	// the existing account gets linked, no second account appears
	assert.Equal(t, local.ID, account.ID)
	assert.Equal(t, models.ProviderGoogle, account.Provider)
	require.NotNil(t, account.ProviderID)
	assert.Equal(t, "109876541234", *account.ProviderID)
	require.NotNil(t, account.Avatar)
	assert.Equal(t, "https://lh3.example/alice.png", *account.Avatar)

	// password login stays possible after linking
	assert.True(t, account.HasPassword())

	_, err = accounts.FindByUsername(ctx, "alice_1234")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestResolve_AlreadyLinkedReturnsUnchanged(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	created, err := r.Resolve(ctx, googleProfile())
	require.NoError(t, err)

	// a second provider on the same email does not steal the slot
	account, err := r.Resolve(ctx, &auth.Profile{
		Provider:  models.ProviderGithub,
		SubjectID: "778899",
		Email:     "alice@x.com",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, account.ID)
	assert.Equal(t, models.ProviderGoogle, account.Provider)
	require.NotNil(t, account.ProviderID)
	assert.Equal(t, "109876541234", *account.ProviderID)
}

func TestResolve_PlaceholderEmail(t *testing.T) {
	r, _ := newTestResolver(t)

	account, err := r.Resolve(context.Background(), &auth.Profile{
		Provider:  models.ProviderGithub,
		SubjectID: "443322",
		Login:     "octocat",
	})
	require.NoError(t, err)

	assert.Equal(t, "octocat@github.local", account.Email)
	assert.Equal(t, "octocat_3322", account.Username)
}

func TestResolve_PlaceholderEmailDeterministic(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	profile := &auth.Profile{
		Provider:  models.ProviderGithub,
		SubjectID: "443322",
		Login:     "octocat",
	}

	first, err := r.Resolve(ctx, profile)
	require.NoError(t, err)

	second, err := r.Resolve(ctx, profile)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestResolve_UsernameCollisionRetries(t *testing.T) {
	r, accounts := newTestResolver(t)
	ctx := context.Background()

	// occupy the synthesized username with an unrelated account
	hash := "digest"
	require.NoError(t, accounts.Create(ctx, &models.Account{
		Email:        "other@x.com",
		Username:     "alice_1234",
		PasswordHash: &hash,
		Provider:     models.ProviderLocal,
	}))

	account, err := r.Resolve(ctx, googleProfile())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(account.Username, "alice_"))
	assert.NotEqual(t, "alice_1234", account.Username)
}

func TestResolve_InvalidProfile(t *testing.T) {
	r, _ := newTestResolver(t)

	_, err := r.Resolve(context.Background(), nil)
	assert.ErrorIs(t, err, auth.ErrValidation)

	_, err = r.Resolve(context.Background(), &auth.Profile{Provider: models.ProviderGoogle})
	assert.ErrorIs(t, err, auth.ErrValidation)
}

// =============================================================================
// Bounded retry exhaustion
// =============================================================================

type exhaustedRepository struct {
	repository.AccountRepository
	attempts int
}

func (r *exhaustedRepository) FindByEmailOrProviderID(context.Context, string, string, string) (*models.Account, error) {
	return nil, auth.ErrNotFound
}

func (r *exhaustedRepository) Create(context.Context, *models.Account) error {
	r.attempts++
	return auth.ErrDuplicateAccount
}

func TestResolve_GivesUpAfterBoundedRetries(t *testing.T) {
	repo := &exhaustedRepository{}
	r := NewAccountResolver(repo)

	_, err := r.Resolve(context.Background(), googleProfile())

	assert.ErrorIs(t, err, auth.ErrDuplicateAccount)
	assert.Equal(t, maxUsernameAttempts, repo.attempts)
}
