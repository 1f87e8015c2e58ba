package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/hornerapp/horner-server/internal/config"
	"github.com/hornerapp/horner-server/internal/logger"
	"github.com/hornerapp/horner-server/internal/sse"
	"github.com/hornerapp/horner-server/internal/sync"
)

// SyncerHandle wraps the debounced sync pusher with shutdown capability.
// Syncer is nil when remote sync is disabled.
type SyncerHandle struct {
	*sync.Syncer
}

// Shutdown implements do.Shutdownable.
func (h *SyncerHandle) Shutdown() error {
	if h.Syncer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Syncer.Shutdown(ctx)
}

// ProvideSyncer provides the debounced push pipeline to the remote ledger.
// Sync state transitions are broadcast to connected clients.
func ProvideSyncer(i do.Injector) (*SyncerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	remoteHandle := do.MustInvoke[*RemoteStoreHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)

	if remoteHandle.Store == nil {
		return &SyncerHandle{Syncer: nil}, nil
	}

	onStatus := func(accountID, status, errMsg string) {
		sseHandle.Emit(sse.NewSyncStatusEvent(accountID, sse.SyncStatusEventData{
			Status: status,
			Error:  errMsg,
		}))
	}

	syncer := sync.New(remoteHandle.Store, cfg.Sync.Debounce, log.Logger, onStatus)

	log.Info("Sync pipeline started", "debounce", cfg.Sync.Debounce)

	return &SyncerHandle{Syncer: syncer}, nil
}
