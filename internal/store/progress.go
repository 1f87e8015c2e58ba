package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hornerapp/horner-server/internal/domain"
)

// GetProgress retrieves the progress snapshot for an account.
// A missing or unreadable record yields a fresh snapshot started at now,
// so a corrupt database never blocks the reading flow.
func (s *Store) GetProgress(accountID string, now time.Time) (*domain.Progress, error) {
	key := buildKey(progressPrefix, accountID)
	defer releaseKey(key)

	var progress domain.Progress
	err := s.get(key, &progress)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.NewProgress(now), nil
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("discarding unreadable progress snapshot", "account_id", accountID, "error", err)
		}
		return domain.NewProgress(now), nil
	}

	// Older snapshots may predate some fields.
	if progress.CompletedReadings == nil {
		progress.CompletedReadings = make(domain.KeySet)
	}
	if progress.StartDate == "" {
		progress.StartDate = domain.FormatDate(now)
	}

	return &progress, nil
}

// PutProgress stores the progress snapshot for an account.
// The whole snapshot is written in one transaction.
func (s *Store) PutProgress(accountID string, progress *domain.Progress) error {
	key := buildKey(progressPrefix, accountID)
	defer releaseKey(key)

	if err := s.set(key, progress); err != nil {
		return fmt.Errorf("failed to store progress for %s: %w", accountID, err)
	}
	return nil
}

// DeleteProgress removes the progress snapshot for an account.
func (s *Store) DeleteProgress(accountID string) error {
	key := buildKey(progressPrefix, accountID)
	defer releaseKey(key)

	if err := s.delete(key); err != nil {
		return fmt.Errorf("failed to delete progress for %s: %w", accountID, err)
	}
	return nil
}

// HasProgress reports whether an account has a stored snapshot.
func (s *Store) HasProgress(accountID string) (bool, error) {
	key := buildKey(progressPrefix, accountID)
	defer releaseKey(key)

	return s.exists(key)
}
