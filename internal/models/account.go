// Package models contains persistence models for the auth service.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Providers an account can originate from. ProviderLocal accounts carry a
// password hash; federated accounts may not.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

// Account is the unified identity record. A single account is reachable via
// local credentials and/or one linked external provider.
type Account struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash *string   `json:"-"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	Avatar       *string   `json:"avatar"`
	Provider     string    `json:"provider" gorm:"not null;default:local;uniqueIndex:idx_provider_subject"`
	ProviderID   *string   `json:"-" gorm:"uniqueIndex:idx_provider_subject"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the database table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate assigns the opaque identifier. IDs are immutable after this.
func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// HasPassword reports whether local password login is possible for the
// account. Accounts created through federation alone have no hash.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// Linked reports whether an external provider identity has been attached.
func (a *Account) Linked() bool {
	return a.ProviderID != nil && *a.ProviderID != ""
}

// PublicAccount is the client-facing projection of an Account. It never
// includes the password hash or the provider subject id.
type PublicAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Avatar    *string   `json:"avatar"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the projection safe to serialize in API responses.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Email:     a.Email,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Avatar:    a.Avatar,
		Provider:  a.Provider,
		CreatedAt: a.CreatedAt,
	}
}
