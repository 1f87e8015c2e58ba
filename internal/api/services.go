package api

import (
	"github.com/hornerapp/horner-server/internal/service"
)

// Services groups the business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Plan     *service.PlanService
	Progress *service.ProgressService
	Sync     *service.SyncService
	Settings *service.SettingsService
}
