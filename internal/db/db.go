// Package db opens the account store and keeps its schema current.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shivam-rawat-4927/auth-service/internal/models"
)

// Open connects to Postgres and applies the schema migration. TranslateError
// is required: the unique indexes on email, username and (provider,
// provider_id) are the authoritative uniqueness checks, and callers depend on
// violations arriving as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate creates or updates the accounts table.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Account{}); err != nil {
		return fmt.Errorf("migrate accounts: %w", err)
	}
	return nil
}
