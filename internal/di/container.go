// Package di provides dependency injection configuration for the catalog CLI.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/bookcatalog/internal/catalog"
	"github.com/listenupapp/bookcatalog/internal/config"
	"github.com/listenupapp/bookcatalog/internal/di/providers"
	"github.com/listenupapp/bookcatalog/internal/logger"
	"github.com/listenupapp/bookcatalog/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
// src supplies the command-line flags the configuration is read from.
func NewContainer(src config.Source) *do.RootScope {
	injector := do.New()

	do.ProvideValue[config.Source](injector, src)

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Catalog
	do.Provide(injector, providers.ProvideCatalog)

	return injector
}

// Bootstrap initializes every service, surfacing the first construction error.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*validation.Validator](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*catalog.Catalog](injector); err != nil {
		return err
	}
	return nil
}
