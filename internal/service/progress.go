package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hornerapp/horner-server/internal/domain"
	apperrors "github.com/hornerapp/horner-server/internal/errors"
	"github.com/hornerapp/horner-server/internal/sse"
	"github.com/hornerapp/horner-server/internal/store"
)

// EventEmitter broadcasts events to connected clients.
type EventEmitter interface {
	Emit(event sse.Event)
}

// SyncScheduler queues snapshots for pushing to the remote ledger.
type SyncScheduler interface {
	Schedule(accountID string, progress *domain.Progress)
}

// Reconciler merges remote state into the local snapshot the first time an
// account is seen. MarkReconciled skips the merge for the rest of the
// session when local state must win over the remote row.
type Reconciler interface {
	EnsureReconciled(ctx context.Context, accountID string)
	MarkReconciled(accountID string)
}

// ProgressService owns the reading progress flow: assignments, the toggle
// mutation, stats, calendar, reset, and start-date changes.
type ProgressService struct {
	store      *store.Store
	events     EventEmitter
	syncer     SyncScheduler
	reconciler Reconciler
	logger     *slog.Logger
	now        func() time.Time
}

// NewProgressService creates a new progress service.
// syncer and reconciler may be nil when remote sync is disabled.
func NewProgressService(store *store.Store, events EventEmitter, syncer SyncScheduler, reconciler Reconciler, logger *slog.Logger) *ProgressService {
	return &ProgressService{
		store:      store,
		events:     events,
		syncer:     syncer,
		reconciler: reconciler,
		logger:     logger,
		now:        time.Now,
	}
}

// TodayView is the view model for a single day of the plan.
type TodayView struct {
	Date           string                `json:"date"`
	DayOfYear      int                   `json:"day_of_year"`
	Readings       []domain.TodayReading `json:"readings"`
	CompletedCount int                   `json:"completed_count"`
	AllComplete    bool                  `json:"all_complete"`
}

// TodayReadings builds the view model for the given date.
func (s *ProgressService) TodayReadings(ctx context.Context, accountID string, date time.Time) (*TodayView, error) {
	s.reconcile(ctx, accountID)

	progress, err := s.store.GetProgress(accountID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	day := domain.DayOfYear(date)
	readings, err := domain.AssignmentsForDay(day, progress.CompletedReadings)
	if err != nil {
		return nil, mapScheduleError(err)
	}

	return &TodayView{
		Date:           domain.FormatDate(date),
		DayOfYear:      day,
		Readings:       readings,
		CompletedCount: progress.CompletedForDay(day),
		AllComplete:    progress.IsDayComplete(day),
	}, nil
}

// ReadingsForDay builds the view model for an arbitrary day of the year.
func (s *ProgressService) ReadingsForDay(ctx context.Context, accountID string, day int) ([]domain.TodayReading, error) {
	s.reconcile(ctx, accountID)

	progress, err := s.store.GetProgress(accountID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	readings, err := domain.AssignmentsForDay(day, progress.CompletedReadings)
	if err != nil {
		return nil, mapScheduleError(err)
	}
	return readings, nil
}

// ToggleRequest identifies the reading to toggle.
type ToggleRequest struct {
	DayOfYear int `json:"day_of_year" validate:"required,gte=1"`
	ListID    int `json:"list_id" validate:"required,gte=1,lte=10"`
}

// ToggleResponse carries the updated snapshot and any milestone crossed.
type ToggleResponse struct {
	Progress  *domain.Progress  `json:"progress"`
	Completed bool              `json:"completed"`
	Milestone *domain.Milestone `json:"milestone,omitempty"`
}

// Toggle flips the completion state of one reading. It is the sole mutation
// entry point for the ledger. Completing a reading may unlock a milestone,
// which is broadcast once and never persisted.
func (s *ProgressService) Toggle(ctx context.Context, accountID string, req ToggleRequest) (*ToggleResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	if !domain.ValidList(req.ListID) {
		return nil, apperrors.InvalidArgumentf("unknown list %d", req.ListID)
	}

	s.reconcile(ctx, accountID)

	now := s.now()
	progress, err := s.store.GetProgress(accountID, now)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	previousCount := progress.CompletedForList(req.ListID)
	completed := progress.Toggle(req.DayOfYear, req.ListID, now)

	if err := s.store.PutProgress(accountID, progress); err != nil {
		return nil, fmt.Errorf("store progress: %w", err)
	}

	var milestone *domain.Milestone
	if completed {
		stats := domain.ComputeCycleStats(progress.CompletedReadings)
		milestone = domain.CheckMilestone(req.ListID, previousCount, stats)
	}

	s.events.Emit(sse.NewProgressUpdatedEvent(accountID, progress))
	if milestone != nil {
		s.events.Emit(sse.NewMilestoneUnlockedEvent(accountID, milestone))
		s.logger.Info("milestone unlocked",
			"account_id", accountID,
			"type", string(milestone.Type),
			"list_id", milestone.ListID,
		)
	}

	s.scheduleSync(accountID, progress)

	s.logger.Debug("reading toggled",
		"account_id", accountID,
		"day_of_year", req.DayOfYear,
		"list_id", req.ListID,
		"completed", completed,
	)

	return &ToggleResponse{
		Progress:  progress,
		Completed: completed,
		Milestone: milestone,
	}, nil
}

// Snapshot returns the current ledger snapshot for an account.
func (s *ProgressService) Snapshot(ctx context.Context, accountID string) (*domain.Progress, error) {
	s.reconcile(ctx, accountID)

	progress, err := s.store.GetProgress(accountID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return progress, nil
}

// StatsView aggregates per-list cycle stats, totals, and milestone messages.
type StatsView struct {
	Lists    []domain.CycleStat `json:"lists"`
	Totals   domain.TotalStats  `json:"totals"`
	Messages []string           `json:"messages"`
}

// Stats computes cycle statistics for an account.
func (s *ProgressService) Stats(ctx context.Context, accountID string) (*StatsView, error) {
	s.reconcile(ctx, accountID)

	progress, err := s.store.GetProgress(accountID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	stats := domain.ComputeCycleStats(progress.CompletedReadings)
	return &StatsView{
		Lists:    stats,
		Totals:   domain.ComputeTotalStats(stats),
		Messages: domain.MilestoneMessages(stats),
	}, nil
}

// CalendarDay is one day of the trailing completion calendar.
type CalendarDay struct {
	Date           string `json:"date"`
	DayOfYear      int    `json:"day_of_year"`
	CompletedCount int    `json:"completed_count"`
	Complete       bool   `json:"complete"`
}

// Calendar returns per-day completion counts for the trailing days window,
// oldest first, ending at today.
func (s *ProgressService) Calendar(ctx context.Context, accountID string, days int) ([]CalendarDay, error) {
	if days < 1 || days > 366 {
		return nil, apperrors.InvalidArgumentf("days must be between 1 and 366, got %d", days)
	}

	s.reconcile(ctx, accountID)

	now := s.now()
	progress, err := s.store.GetProgress(accountID, now)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	calendar := make([]CalendarDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		day := domain.DayOfYear(date)
		count := progress.CompletedForDay(day)
		calendar = append(calendar, CalendarDay{
			Date:           domain.FormatDate(date),
			DayOfYear:      day,
			CompletedCount: count,
			Complete:       count == domain.ListCount,
		})
	}
	return calendar, nil
}

// Reset wipes the ledger back to defaults with today as the new start date.
func (s *ProgressService) Reset(ctx context.Context, accountID string) (*domain.Progress, error) {
	now := s.now()
	progress, err := s.store.GetProgress(accountID, now)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	progress.Reset(now)

	if err := s.store.PutProgress(accountID, progress); err != nil {
		return nil, fmt.Errorf("store progress: %w", err)
	}

	// The reset supersedes the remote row. Mark the session reconciled so
	// the next read does not merge the stale remote copy back; the
	// scheduled push overwrites it with the wiped snapshot instead.
	s.markReconciled(accountID)

	s.events.Emit(sse.NewProgressUpdatedEvent(accountID, progress))
	s.scheduleSync(accountID, progress)

	s.logger.Info("progress reset", "account_id", accountID)
	return progress, nil
}

// UpdateStartDate re-baselines the plan start date without touching completions.
func (s *ProgressService) UpdateStartDate(ctx context.Context, accountID, date string) (*domain.Progress, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, apperrors.Validationf("start date must be formatted YYYY-MM-DD, got %q", date)
	}

	// Merge remote state first; the merge prefers the earlier start date
	// and would otherwise undo this change on a later session pull.
	s.reconcile(ctx, accountID)

	progress, err := s.store.GetProgress(accountID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	progress.StartDate = date

	if err := s.store.PutProgress(accountID, progress); err != nil {
		return nil, fmt.Errorf("store progress: %w", err)
	}

	s.events.Emit(sse.NewProgressUpdatedEvent(accountID, progress))
	s.scheduleSync(accountID, progress)

	return progress, nil
}

// reconcile performs the once-per-account remote merge, if configured.
func (s *ProgressService) reconcile(ctx context.Context, accountID string) {
	if s.reconciler != nil && accountID != LocalAccountID {
		s.reconciler.EnsureReconciled(ctx, accountID)
	}
}

// markReconciled suppresses the session merge for this account, if configured.
func (s *ProgressService) markReconciled(accountID string) {
	if s.reconciler != nil && accountID != LocalAccountID {
		s.reconciler.MarkReconciled(accountID)
	}
}

// scheduleSync queues a push unless sync is disabled for this account.
func (s *ProgressService) scheduleSync(accountID string, progress *domain.Progress) {
	if s.syncer == nil || accountID == LocalAccountID {
		return
	}
	s.syncer.Schedule(accountID, progress)
}

// mapScheduleError converts scheduler sentinel errors into coded errors.
func mapScheduleError(err error) error {
	if apperrors.Is(err, domain.ErrInvalidDayOfYear) {
		return apperrors.InvalidArgument(err.Error())
	}
	return err
}
