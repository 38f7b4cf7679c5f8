// Package providers contains dependency injection providers for the catalog CLI.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/bookcatalog/internal/config"
	"github.com/listenupapp/bookcatalog/internal/logger"
	"github.com/listenupapp/bookcatalog/internal/validation"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	src := do.MustInvoke[config.Source](i)
	return config.Load(src)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Format:      cfg.Logger.Format,
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Debug("Starting book catalog",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"seed_path", cfg.Catalog.SeedPath,
		"default_seed", cfg.Catalog.DefaultSeed,
	)

	return log, nil
}

// ProvideValidator provides the shared record validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}
