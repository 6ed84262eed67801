// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up global logging. Development gets a human-readable console
// writer; everything else emits structured JSON.
func Init(environment string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	}

	log.Info().Str("environment", environment).Msg("logger initialized")
}
