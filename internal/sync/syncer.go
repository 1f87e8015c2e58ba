// Package sync pushes local progress snapshots to the remote ledger.
// Pushes are debounced so rapid toggling collapses into a single write,
// and the newest snapshot always wins.
package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hornerapp/horner-server/internal/domain"
)

// RemoteStore is the destination for pushed snapshots.
type RemoteStore interface {
	GetProgress(ctx context.Context, accountID string) (*domain.Progress, error)
	UpsertProgress(ctx context.Context, accountID string, progress *domain.Progress) error
}

// Sync states reported through StatusFunc.
const (
	StatusIdle    = "idle"
	StatusSyncing = "syncing"
	StatusSynced  = "synced"
	StatusError   = "error"
)

// StatusFunc receives sync state transitions for an account.
// errMsg is set only for StatusError.
type StatusFunc func(accountID, status, errMsg string)

// Syncer debounces and pushes progress snapshots to a RemoteStore.
// Each account holds a single pending slot: scheduling a newer snapshot
// before the quiet period elapses replaces the older one.
type Syncer struct {
	remote   RemoteStore
	logger   *slog.Logger
	onStatus StatusFunc
	debounce time.Duration

	// limiter caps outbound pushes across all accounts.
	limiter *rate.Limiter

	mu      sync.Mutex
	pending map[string]*domain.Progress
	timers  map[string]*time.Timer
	closed  bool

	wg sync.WaitGroup
}

// New creates a Syncer with the given quiet period.
// onStatus may be nil.
func New(remote RemoteStore, debounce time.Duration, logger *slog.Logger, onStatus StatusFunc) *Syncer {
	return &Syncer{
		remote:   remote,
		logger:   logger,
		onStatus: onStatus,
		debounce: debounce,
		limiter:  rate.NewLimiter(rate.Limit(10), 5),
		pending:  make(map[string]*domain.Progress),
		timers:   make(map[string]*time.Timer),
	}
}

// Schedule queues a snapshot for pushing after the quiet period.
// The snapshot is cloned, so callers may keep mutating their copy.
// A snapshot scheduled while one is already pending replaces it and
// restarts the quiet period.
func (s *Syncer) Schedule(accountID string, progress *domain.Progress) {
	snapshot := progress.Clone()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.pending[accountID] = snapshot

	if timer, ok := s.timers[accountID]; ok {
		timer.Reset(s.debounce)
		s.mu.Unlock()
		s.notify(accountID, StatusSyncing, "")
		return
	}

	s.timers[accountID] = time.AfterFunc(s.debounce, func() {
		s.flush(accountID)
	})
	s.mu.Unlock()

	s.notify(accountID, StatusSyncing, "")
}

// flush pushes the pending snapshot for an account, if any.
func (s *Syncer) flush(accountID string) {
	s.mu.Lock()
	snapshot, ok := s.pending[accountID]
	if ok {
		delete(s.pending, accountID)
		// Registered under the lock so Shutdown's Wait observes this push.
		s.wg.Add(1)
	}
	delete(s.timers, accountID)
	s.mu.Unlock()

	if !ok {
		return
	}
	defer s.wg.Done()

	s.push(context.Background(), accountID, snapshot)
}

// push writes one snapshot to the remote store.
// Failures are logged and surfaced as status, never propagated: the local
// snapshot remains authoritative and a later push will retry.
func (s *Syncer) push(ctx context.Context, accountID string, snapshot *domain.Progress) {
	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Warn("sync push canceled while rate limited",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		s.notify(accountID, StatusError, err.Error())
		return
	}

	if err := s.remote.UpsertProgress(ctx, accountID, snapshot); err != nil {
		s.logger.Error("failed to push progress snapshot",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		s.notify(accountID, StatusError, err.Error())
		return
	}

	s.logger.Debug("progress snapshot pushed",
		slog.String("account_id", accountID),
		slog.Int("total_chapters", snapshot.TotalChaptersRead))
	s.notify(accountID, StatusSynced, "")
}

// Flush pushes any pending snapshots immediately, bypassing the quiet period.
func (s *Syncer) Flush(ctx context.Context) {
	s.mu.Lock()
	accounts := make([]string, 0, len(s.pending))
	snapshots := make([]*domain.Progress, 0, len(s.pending))
	for accountID, snapshot := range s.pending {
		accounts = append(accounts, accountID)
		snapshots = append(snapshots, snapshot)
	}
	s.pending = make(map[string]*domain.Progress)
	for accountID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, accountID)
	}
	s.mu.Unlock()

	for i, accountID := range accounts {
		s.push(ctx, accountID, snapshots[i])
	}
}

// Shutdown stops accepting new snapshots and flushes pending ones.
func (s *Syncer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.Flush(ctx)

	// Wait for in-flight timer pushes to finish.
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("sync shutdown timeout, some pushes may be incomplete")
		return ctx.Err()
	}

	s.logger.Info("syncer shutdown complete")
	return nil
}

func (s *Syncer) notify(accountID, status, errMsg string) {
	if s.onStatus != nil {
		s.onStatus(accountID, status, errMsg)
	}
}
