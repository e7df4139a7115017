package envx

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Load parses a snapshot of the source into the provided configuration struct
// based on `env` field tags. A nil source falls back to the process
// environment. Unlike validation, parsing stops at the first conversion
// failure reported by the underlying parser.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var cfg DatabaseConfig
//	if err := envx.Load(envx.OS(), &cfg); err != nil {
//		// Handle error
//	}
func Load[T any](src Source, cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}
	if src == nil {
		src = OS()
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: src.Entries()}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails. Useful
// for configuration the application cannot start without.
func MustLoad[T any](src Source, cfg *T) {
	if err := Load(src, cfg); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
