package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/hornerapp/horner-server/internal/domain"
	"github.com/hornerapp/horner-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func TestGetProgress_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetProgress(context.Background(), "acct-never-synced")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProgressUpsertAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	progress := domain.NewProgress(testNow)
	progress.MarkComplete(166, 1, testNow)
	progress.MarkComplete(166, 2, testNow)

	require.NoError(t, s.UpsertProgress(ctx, "acct-1", progress))

	retrieved, err := s.GetProgress(ctx, "acct-1")
	require.NoError(t, err)

	assert.Equal(t, progress.CompletedReadings.Sorted(), retrieved.CompletedReadings.Sorted())
	assert.Equal(t, progress.StreakCount, retrieved.StreakCount)
	assert.Equal(t, progress.LastReadDate, retrieved.LastReadDate)
	assert.Equal(t, progress.TotalChaptersRead, retrieved.TotalChaptersRead)
	assert.Equal(t, progress.StartDate, retrieved.StartDate)
}

func TestUpsertProgress_LastWriterWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := domain.NewProgress(testNow)
	first.MarkComplete(1, 1, testNow)
	require.NoError(t, s.UpsertProgress(ctx, "acct-1", first))

	second := domain.NewProgress(testNow)
	second.MarkComplete(2, 2, testNow)
	second.MarkComplete(3, 3, testNow)
	require.NoError(t, s.UpsertProgress(ctx, "acct-1", second))

	retrieved, err := s.GetProgress(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2-2", "3-3"}, retrieved.CompletedReadings.Sorted())
}

func TestProgress_AccountsAreIsolated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	progress := domain.NewProgress(testNow)
	progress.MarkComplete(1, 1, testNow)
	require.NoError(t, s.UpsertProgress(ctx, "acct-a", progress))

	_, err := s.GetProgress(ctx, "acct-b")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteProgress(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	progress := domain.NewProgress(testNow)
	require.NoError(t, s.UpsertProgress(ctx, "acct-1", progress))

	require.NoError(t, s.DeleteProgress(ctx, "acct-1"))

	_, err := s.GetProgress(ctx, "acct-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.DeleteProgress(ctx, "acct-1"), store.ErrNotFound)
}

func TestProgress_EmptyKeySetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	progress := domain.NewProgress(testNow)
	require.NoError(t, s.UpsertProgress(ctx, "acct-1", progress))

	retrieved, err := s.GetProgress(ctx, "acct-1")
	require.NoError(t, err)
	assert.NotNil(t, retrieved.CompletedReadings)
	assert.Empty(t, retrieved.CompletedReadings)
}
