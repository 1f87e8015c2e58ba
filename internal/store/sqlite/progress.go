package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"
	"errors"
	"fmt"
	"time"

	"github.com/hornerapp/horner-server/internal/domain"
	"github.com/hornerapp/horner-server/internal/store"
)

// progressColumns is the ordered list of columns selected in reading_progress queries.
// Must match the scan order in scanProgress.
const progressColumns = `account_id, completed_readings, streak_count,
	last_read_date, total_chapters_read, start_date`

// scanProgress scans a sql.Row (or sql.Rows via its Scan method) into a domain.Progress.
func scanProgress(scanner interface{ Scan(dest ...any) error }) (string, *domain.Progress, error) {
	var (
		accountID string
		completed string
		p         domain.Progress
	)

	err := scanner.Scan(
		&accountID,
		&completed,
		&p.StreakCount,
		&p.LastReadDate,
		&p.TotalChaptersRead,
		&p.StartDate,
	)
	if err != nil {
		return "", nil, err
	}

	if err := json.Unmarshal([]byte(completed), &p.CompletedReadings); err != nil {
		return "", nil, fmt.Errorf("decode completed readings for %s: %w", accountID, err)
	}
	if p.CompletedReadings == nil {
		p.CompletedReadings = make(domain.KeySet)
	}

	return accountID, &p, nil
}

// GetProgress retrieves the synced snapshot for an account.
// Returns store.ErrNotFound if the account has never synced.
func (s *Store) GetProgress(ctx context.Context, accountID string) (*domain.Progress, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+progressColumns+` FROM reading_progress WHERE account_id = ?`, accountID)

	_, p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpsertProgress creates or replaces the snapshot for an account.
// Last writer wins; the row always reflects the most recent push.
func (s *Store) UpsertProgress(ctx context.Context, accountID string, progress *domain.Progress) error {
	completed, err := json.Marshal(progress.CompletedReadings)
	if err != nil {
		return fmt.Errorf("encode completed readings for %s: %w", accountID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO reading_progress (
			account_id, completed_readings, streak_count,
			last_read_date, total_chapters_read, start_date, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		accountID,
		string(completed),
		progress.StreakCount,
		progress.LastReadDate,
		progress.TotalChaptersRead,
		progress.StartDate,
		formatTime(time.Now()),
	)
	return err
}

// DeleteProgress removes the snapshot for an account.
// Returns store.ErrNotFound if the account has no snapshot.
func (s *Store) DeleteProgress(ctx context.Context, accountID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM reading_progress WHERE account_id = ?`, accountID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
