// Package di provides dependency injection configuration for the Horner server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/hornerapp/horner-server/internal/config"
	"github.com/hornerapp/horner-server/internal/di/providers"
	"github.com/hornerapp/horner-server/internal/logger"
	"github.com/hornerapp/horner-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Event layer
	do.Provide(injector, providers.ProvideSSEManager)

	// Database layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideRemoteStore)

	// Sync layer
	do.Provide(injector, providers.ProvideSyncer)

	// Business services
	do.Provide(injector, providers.ProvidePlanService)
	do.Provide(injector, providers.ProvideSyncService)
	do.Provide(injector, providers.ProvideProgressService)
	do.Provide(injector, providers.ProvideSettingsService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.RemoteStoreHandle](injector)
	_ = do.MustInvoke[*providers.SyncerHandle](injector)
	_ = do.MustInvoke[*service.PlanService](injector)
	_ = do.MustInvoke[*service.ProgressService](injector)
	_ = do.MustInvoke[*service.SettingsService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
