package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/hornerapp/horner-server/internal/api"
	"github.com/hornerapp/horner-server/internal/config"
	"github.com/hornerapp/horner-server/internal/logger"
	"github.com/hornerapp/horner-server/internal/service"
	"github.com/hornerapp/horner-server/internal/sse"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	planService := do.MustInvoke[*service.PlanService](i)
	progressService := do.MustInvoke[*service.ProgressService](i)
	syncService := do.MustInvoke[*service.SyncService](i)
	settingsService := do.MustInvoke[*service.SettingsService](i)

	services := &api.Services{
		Plan:     planService,
		Progress: progressService,
		Sync:     syncService,
		Settings: settingsService,
	}

	sseHandler := sse.NewHandler(sseHandle.Manager, log.Logger)
	handler := api.NewServer(storeHandle.Store, services, sseHandler, sseHandle.Manager, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "name", cfg.Server.Name, "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
