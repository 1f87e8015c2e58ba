package providers

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/hornerapp/horner-server/internal/config"
	"github.com/hornerapp/horner-server/internal/logger"
	"github.com/hornerapp/horner-server/internal/sse"
	"github.com/hornerapp/horner-server/internal/store"
	"github.com/hornerapp/horner-server/internal/store/sqlite"
)

// SSEManagerHandle wraps the SSE manager with its context for lifecycle management.
type SSEManagerHandle struct {
	*sse.Manager
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *SSEManagerHandle) Shutdown() error {
	h.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Manager.Shutdown(ctx)
}

// ProvideSSEManager provides the server-sent events manager.
func ProvideSSEManager(i do.Injector) (*SSEManagerHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	manager := sse.NewManager(log.Logger)

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())
	go manager.Start(ctx)

	log.Info("SSE manager started")

	return &SSEManagerHandle{
		Manager: manager,
		cancel:  cancel,
	}, nil
}

// StoreHandle wraps the local store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the local progress database.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Local database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// RemoteStoreHandle wraps the remote ledger store with shutdown capability.
// Store is nil when remote sync is disabled.
type RemoteStoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *RemoteStoreHandle) Shutdown() error {
	if h.Store == nil {
		return nil
	}
	return h.Close()
}

// ProvideRemoteStore provides the SQLite-backed remote ledger store.
func ProvideRemoteStore(i do.Injector) (*RemoteStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Sync.Enabled {
		log.Info("Remote sync disabled by configuration")
		return &RemoteStoreHandle{Store: nil}, nil
	}

	db, err := sqlite.Open(cfg.Sync.RemoteDBPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Remote ledger store initialized", "path", cfg.Sync.RemoteDBPath)

	return &RemoteStoreHandle{Store: db}, nil
}

// ProvideSlogLogger provides access to the underlying slog.Logger for packages that need it.
func ProvideSlogLogger(i do.Injector) (*slog.Logger, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return log.Logger, nil
}
