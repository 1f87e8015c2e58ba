package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hornerapp/horner-server/internal/domain"
	apperrors "github.com/hornerapp/horner-server/internal/errors"
	"github.com/hornerapp/horner-server/internal/store"
)

// SettingsService manages per-account preferences.
type SettingsService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store *store.Store, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

// Get returns the account's settings, falling back to defaults.
func (s *SettingsService) Get(_ context.Context, accountID string) (*domain.Settings, error) {
	settings, err := s.store.GetSettings(accountID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// UpdateRequest is the full replacement payload for an account's settings.
type UpdateRequest struct {
	Reminders domain.ReminderSettings `json:"reminders"`
}

// Update replaces the account's settings after validating the reminder
// schedule. Reminder time is 24-hour HH:MM; days are weekdays 0 (Sunday)
// through 6 (Saturday).
func (s *SettingsService) Update(_ context.Context, accountID string, req UpdateRequest) (*domain.Settings, error) {
	if _, err := time.Parse("15:04", req.Reminders.Time); err != nil {
		return nil, apperrors.Validationf("reminder time must be formatted HH:MM, got %q", req.Reminders.Time)
	}
	seen := make(map[int]bool, len(req.Reminders.Days))
	for _, day := range req.Reminders.Days {
		if day < 0 || day > 6 {
			return nil, apperrors.Validationf("reminder day must be between 0 and 6, got %d", day)
		}
		if seen[day] {
			return nil, apperrors.Validationf("reminder day %d repeated", day)
		}
		seen[day] = true
	}

	settings := &domain.Settings{Reminders: req.Reminders}
	if err := s.store.PutSettings(accountID, settings); err != nil {
		return nil, fmt.Errorf("store settings: %w", err)
	}

	s.logger.Debug("settings updated",
		"account_id", accountID,
		"reminders_enabled", settings.Reminders.Enabled,
	)
	return settings, nil
}
