package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hornerapp/horner-server/internal/domain"
	"github.com/hornerapp/horner-server/internal/service"
)

func (s *Server) registerSettingsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getSettings",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings",
		Summary:     "Get settings",
		Description: "Returns the account's settings, with defaults for a fresh account",
		Tags:        []string{"Settings"},
	}, s.handleGetSettings)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateSettings",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings",
		Summary:     "Update settings",
		Description: "Replaces the account's settings",
		Tags:        []string{"Settings"},
	}, s.handleUpdateSettings)
}

// GetSettingsInput contains parameters for reading settings.
type GetSettingsInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
}

// SettingsOutput wraps the settings response for Huma.
type SettingsOutput struct {
	Body domain.Settings
}

// UpdateSettingsRequest is the request body for replacing settings.
type UpdateSettingsRequest struct {
	Reminders domain.ReminderSettings `json:"reminders" doc:"Reminder schedule"`
}

// UpdateSettingsInput wraps the settings request for Huma.
type UpdateSettingsInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
	Body      UpdateSettingsRequest
}

func (s *Server) handleGetSettings(ctx context.Context, input *GetSettingsInput) (*SettingsOutput, error) {
	settings, err := s.services.Settings.Get(ctx, resolveAccount(input.AccountID))
	if err != nil {
		return nil, err
	}
	return &SettingsOutput{Body: *settings}, nil
}

func (s *Server) handleUpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	settings, err := s.services.Settings.Update(ctx, resolveAccount(input.AccountID), service.UpdateRequest{
		Reminders: input.Body.Reminders,
	})
	if err != nil {
		return nil, err
	}
	return &SettingsOutput{Body: *settings}, nil
}
