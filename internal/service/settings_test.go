package service

import (
	"context"
	"testing"

	"github.com/hornerapp/horner-server/internal/domain"
	apperrors "github.com/hornerapp/horner-server/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(setupTestStore(t), testLogger())

	settings, err := svc.Get(context.Background(), "acct-1")
	require.NoError(t, err)

	assert.False(t, settings.Reminders.Enabled)
	assert.Equal(t, "07:00", settings.Reminders.Time)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, settings.Reminders.Days)
}

func TestSettingsService_Update(t *testing.T) {
	svc := NewSettingsService(setupTestStore(t), testLogger())
	ctx := context.Background()

	updated, err := svc.Update(ctx, "acct-1", UpdateRequest{
		Reminders: domain.ReminderSettings{
			Enabled: true,
			Time:    "21:30",
			Days:    []int{1, 2, 3, 4, 5},
		},
	})
	require.NoError(t, err)
	assert.True(t, updated.Reminders.Enabled)
	assert.Equal(t, "21:30", updated.Reminders.Time)

	reloaded, err := svc.Get(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded)
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	svc := NewSettingsService(setupTestStore(t), testLogger())
	ctx := context.Background()

	tests := []struct {
		name      string
		reminders domain.ReminderSettings
	}{
		{"bad time", domain.ReminderSettings{Time: "9am", Days: []int{1}}},
		{"hour out of range", domain.ReminderSettings{Time: "25:00", Days: []int{1}}},
		{"day out of range", domain.ReminderSettings{Time: "07:00", Days: []int{7}}},
		{"negative day", domain.ReminderSettings{Time: "07:00", Days: []int{-1}}},
		{"repeated day", domain.ReminderSettings{Time: "07:00", Days: []int{1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, "acct-1", UpdateRequest{Reminders: tt.reminders})
			require.Error(t, err)

			var domainErr *apperrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, apperrors.CodeValidation, domainErr.Code)
		})
	}
}
