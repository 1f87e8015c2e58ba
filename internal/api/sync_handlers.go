package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hornerapp/horner-server/internal/domain"
	apperrors "github.com/hornerapp/horner-server/internal/errors"
)

func (s *Server) registerSyncRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "syncProgress",
		Method:      http.MethodPost,
		Path:        "/api/v1/progress/sync",
		Summary:     "Sync progress",
		Description: "Merges the remote progress copy into the local ledger and pushes the result",
		Tags:        []string{"Sync"},
	}, s.handleSyncProgress)
}

// SyncProgressInput contains parameters for a manual sync.
type SyncProgressInput struct {
	AccountID string `header:"X-Account-ID" doc:"Account identifier"`
}

// SyncProgressOutput wraps the merged snapshot for Huma.
type SyncProgressOutput struct {
	Body domain.Progress
}

func (s *Server) handleSyncProgress(ctx context.Context, input *SyncProgressInput) (*SyncProgressOutput, error) {
	if s.services.Sync == nil {
		return nil, apperrors.Unavailable("remote sync is disabled")
	}

	merged, err := s.services.Sync.Sync(ctx, resolveAccount(input.AccountID))
	if err != nil {
		return nil, err
	}
	return &SyncProgressOutput{Body: *merged}, nil
}
