package app

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/shivam-rawat-4927/auth-service/internal/config"
	"github.com/shivam-rawat-4927/auth-service/internal/db"
)

type Infra struct {
	DB *gorm.DB
}

func setupInfra(cfg config.Config) (*Infra, error) {
	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("database ready")

	return &Infra{DB: gdb}, nil
}

func (i *Infra) Close() error {
	sqlDB, err := i.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
