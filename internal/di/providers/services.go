package providers

import (
	"github.com/samber/do/v2"

	"github.com/hornerapp/horner-server/internal/logger"
	"github.com/hornerapp/horner-server/internal/service"
)

// ProvidePlanService provides the reading plan catalog service.
func ProvidePlanService(i do.Injector) (*service.PlanService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewPlanService(log.Logger), nil
}

// ProvideSyncService provides the reconciliation service.
// Returns a nil service when remote sync is disabled.
func ProvideSyncService(i do.Injector) (*service.SyncService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	remoteHandle := do.MustInvoke[*RemoteStoreHandle](i)
	syncerHandle := do.MustInvoke[*SyncerHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)

	if remoteHandle.Store == nil {
		return nil, nil
	}

	return service.NewSyncService(storeHandle.Store, remoteHandle.Store, syncerHandle.Syncer, sseHandle.Manager, log.Logger), nil
}

// ProvideProgressService provides the reading progress service.
func ProvideProgressService(i do.Injector) (*service.ProgressService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	syncerHandle := do.MustInvoke[*SyncerHandle](i)
	syncService := do.MustInvoke[*service.SyncService](i)

	var scheduler service.SyncScheduler
	if syncerHandle.Syncer != nil {
		scheduler = syncerHandle.Syncer
	}
	var reconciler service.Reconciler
	if syncService != nil {
		reconciler = syncService
	}

	return service.NewProgressService(storeHandle.Store, sseHandle.Manager, scheduler, reconciler, log.Logger), nil
}

// ProvideSettingsService provides the account settings service.
func ProvideSettingsService(i do.Injector) (*service.SettingsService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	return service.NewSettingsService(storeHandle.Store, log.Logger), nil
}
