package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/hornerapp/horner-server/internal/domain"
)

// GetSettings retrieves the settings for an account, falling back to
// defaults when no record exists.
func (s *Store) GetSettings(accountID string) (*domain.Settings, error) {
	key := buildKey(settingsPrefix, accountID)
	defer releaseKey(key)

	var settings domain.Settings
	err := s.get(key, &settings)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for %s: %w", accountID, err)
	}

	return &settings, nil
}

// PutSettings stores the settings for an account.
func (s *Store) PutSettings(accountID string, settings *domain.Settings) error {
	key := buildKey(settingsPrefix, accountID)
	defer releaseKey(key)

	if err := s.set(key, settings); err != nil {
		return fmt.Errorf("failed to store settings for %s: %w", accountID, err)
	}
	return nil
}
