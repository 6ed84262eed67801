// Package repository provides the data access layer for account records.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
	"github.com/shivam-rawat-4927/auth-service/internal/models"
)

// queryTimeout bounds every repository round trip. Expiry surfaces as a
// retryable auth.ErrRepository.
const queryTimeout = 5 * time.Second

// AccountRepository defines the storage operations the auth core requires.
// Uniqueness of email, username and (provider, provider_id) is enforced by
// database constraints; Create returns auth.ErrDuplicateAccount when the
// constraint rejects a row, which makes application-level existence checks an
// optimization rather than the source of truth.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.Account, error)
	FindByEmailOrProviderID(ctx context.Context, email, provider, providerID string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an AccountRepository backed by gorm.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *accountRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.Account, error) {
	return r.findOne(ctx, "LOWER(email) = LOWER(?) OR username = ?", email, username)
}

func (r *accountRepository) FindByEmailOrProviderID(ctx context.Context, email, provider, providerID string) (*models.Account, error) {
	return r.findOne(ctx,
		"LOWER(email) = LOWER(?) OR (provider = ? AND provider_id = ?)",
		email, provider, providerID,
	)
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return translate("create account", err)
	}
	return nil
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return translate("update account", err)
	}
	return nil
}

func (r *accountRepository) findOne(ctx context.Context, query string, args ...any) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var account models.Account
	if err := r.db.WithContext(ctx).Where(query, args...).First(&account).Error; err != nil {
		return nil, translate("find account", err)
	}
	return &account, nil
}

// translate maps driver errors onto the shared taxonomy. Wrapped detail stays
// available for logs but never reaches a response body.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return auth.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return auth.ErrDuplicateAccount
	default:
		return fmt.Errorf("%w: %s: %v", auth.ErrRepository, op, err)
	}
}
