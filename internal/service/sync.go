package service

import (
	"context"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/hornerapp/horner-server/internal/domain"
	apperrors "github.com/hornerapp/horner-server/internal/errors"
	"github.com/hornerapp/horner-server/internal/store"
	"github.com/hornerapp/horner-server/internal/sse"
	syncpkg "github.com/hornerapp/horner-server/internal/sync"
)

// SyncService reconciles the local ledger with the remote copy and triggers
// pushes. Local state is authoritative between reconciliations.
type SyncService struct {
	local  *store.Store
	remote syncpkg.RemoteStore
	syncer SyncScheduler
	events EventEmitter
	logger *slog.Logger
	now    func() time.Time

	mu         gosync.Mutex
	reconciled map[string]bool
}

// NewSyncService creates a new sync service.
func NewSyncService(local *store.Store, remote syncpkg.RemoteStore, syncer SyncScheduler, events EventEmitter, logger *slog.Logger) *SyncService {
	return &SyncService{
		local:      local,
		remote:     remote,
		syncer:     syncer,
		events:     events,
		logger:     logger,
		now:        time.Now,
		reconciled: make(map[string]bool),
	}
}

// Sync pulls the remote snapshot, merges it with the local ledger, persists
// the merged result locally, and schedules a push of the merged state.
func (s *SyncService) Sync(ctx context.Context, accountID string) (*domain.Progress, error) {
	if accountID == LocalAccountID {
		return nil, apperrors.Unavailable("remote sync is not available for the local account")
	}

	now := s.now()
	local, err := s.local.GetProgress(accountID, now)
	if err != nil {
		return nil, fmt.Errorf("get local progress: %w", err)
	}

	merged := local
	remote, err := s.remote.GetProgress(ctx, accountID)
	switch {
	case err == nil:
		merged = domain.MergeProgress(local, remote)
	case apperrors.Is(err, store.ErrNotFound):
		// First sync for this account, local state stands alone.
	default:
		s.events.Emit(sse.NewSyncStatusEvent(accountID, sse.SyncStatusEventData{
			Status: syncpkg.StatusError,
			Error:  err.Error(),
		}))
		return nil, apperrors.Unavailable("remote store unreachable").WithCause(err)
	}

	if err := s.local.PutProgress(accountID, merged); err != nil {
		return nil, fmt.Errorf("store merged progress: %w", err)
	}

	if s.syncer != nil {
		s.syncer.Schedule(accountID, merged)
	}

	s.MarkReconciled(accountID)
	s.events.Emit(sse.NewProgressUpdatedEvent(accountID, merged))

	s.logger.Info("progress synced",
		"account_id", accountID,
		"completed_readings", len(merged.CompletedReadings),
	)
	return merged, nil
}

// EnsureReconciled runs the merge once per account per process lifetime,
// typically at session start. Failures are logged, not propagated: the
// local ledger keeps working offline.
func (s *SyncService) EnsureReconciled(ctx context.Context, accountID string) {
	s.mu.Lock()
	done := s.reconciled[accountID]
	s.mu.Unlock()
	if done {
		return
	}

	if _, err := s.Sync(ctx, accountID); err != nil {
		s.logger.Warn("session reconciliation failed, continuing with local state",
			"account_id", accountID,
			"error", err,
		)
	}
}

// MarkReconciled records that the session merge for an account already ran
// or is superseded by a local operation that must win over the remote row.
// EnsureReconciled becomes a no-op for the account afterwards.
func (s *SyncService) MarkReconciled(accountID string) {
	s.mu.Lock()
	s.reconciled[accountID] = true
	s.mu.Unlock()
}
