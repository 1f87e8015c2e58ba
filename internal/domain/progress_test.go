package domain

import (
	"encoding/json/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func TestMarkComplete_Idempotent(t *testing.T) {
	p := NewProgress(testNow)

	assert.True(t, p.MarkComplete(10, 3, testNow))
	assert.False(t, p.MarkComplete(10, 3, testNow))

	assert.Equal(t, 1, p.TotalChaptersRead)
	assert.Len(t, p.CompletedReadings, 1)
	assert.Equal(t, 1, p.StreakCount)
}

func TestToggle_Inverse(t *testing.T) {
	p := NewProgress(testNow)
	p.MarkComplete(1, 1, testNow)
	p.MarkComplete(1, 2, testNow)

	before := p.CompletedReadings.Sorted()
	beforeTotal := p.TotalChaptersRead

	assert.True(t, p.Toggle(50, 5, testNow))
	assert.False(t, p.Toggle(50, 5, testNow))

	assert.Equal(t, before, p.CompletedReadings.Sorted())
	assert.Equal(t, beforeTotal, p.TotalChaptersRead)
}

func TestMarkIncomplete_NeverNegative(t *testing.T) {
	p := NewProgress(testNow)

	assert.False(t, p.MarkIncomplete(1, 1))
	assert.Equal(t, 0, p.TotalChaptersRead)
}

func TestMarkComplete_StreakRules(t *testing.T) {
	today := FormatDate(testNow)
	yesterday := FormatDate(testNow.AddDate(0, 0, -1))
	twoDaysAgo := FormatDate(testNow.AddDate(0, 0, -2))

	tests := []struct {
		name         string
		lastReadDate string
		streak       int
		wantStreak   int
	}{
		{"continues from yesterday", yesterday, 5, 6},
		{"resets after gap", twoDaysAgo, 5, 1},
		{"unchanged within same day", today, 5, 5},
		{"first ever completion", "", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(testNow)
			p.LastReadDate = tt.lastReadDate
			p.StreakCount = tt.streak

			p.MarkComplete(100, 1, testNow)

			assert.Equal(t, tt.wantStreak, p.StreakCount)
			assert.Equal(t, today, p.LastReadDate)
		})
	}
}

func TestMarkIncomplete_DoesNotTouchStreak(t *testing.T) {
	p := NewProgress(testNow)
	p.MarkComplete(10, 1, testNow)
	require.Equal(t, 1, p.StreakCount)

	p.MarkIncomplete(10, 1)

	assert.Equal(t, 1, p.StreakCount)
	assert.Equal(t, FormatDate(testNow), p.LastReadDate)
	assert.Equal(t, 0, p.TotalChaptersRead)
}

func TestCompletedForDay(t *testing.T) {
	p := NewProgress(testNow)
	for list := 1; list <= 4; list++ {
		p.MarkComplete(7, list, testNow)
	}
	// Day 77 must not be confused with day 7 by prefix matching.
	p.MarkComplete(77, 1, testNow)

	assert.Equal(t, 4, p.CompletedForDay(7))
	assert.Equal(t, 1, p.CompletedForDay(77))
	assert.Equal(t, 0, p.CompletedForDay(8))
}

func TestIsDayComplete(t *testing.T) {
	p := NewProgress(testNow)
	for list := 1; list <= ListCount-1; list++ {
		p.MarkComplete(3, list, testNow)
	}
	assert.False(t, p.IsDayComplete(3))

	p.MarkComplete(3, ListCount, testNow)
	assert.True(t, p.IsDayComplete(3))
}

func TestCompletedForList(t *testing.T) {
	p := NewProgress(testNow)
	p.MarkComplete(1, 1, testNow)
	p.MarkComplete(2, 1, testNow)
	p.MarkComplete(1, 10, testNow)

	// Suffix matching must not confuse list 1 with list 10.
	assert.Equal(t, 2, p.CompletedForList(1))
	assert.Equal(t, 1, p.CompletedForList(10))
	assert.Equal(t, 0, p.CompletedForList(2))
}

func TestReset(t *testing.T) {
	p := NewProgress(testNow.AddDate(0, 0, -30))
	p.MarkComplete(1, 1, testNow)
	p.MarkComplete(1, 2, testNow)

	resetTime := testNow.AddDate(0, 0, 1)
	p.Reset(resetTime)

	assert.Empty(t, p.CompletedReadings)
	assert.Equal(t, 0, p.StreakCount)
	assert.Equal(t, 0, p.TotalChaptersRead)
	assert.Empty(t, p.LastReadDate)
	assert.Equal(t, FormatDate(resetTime), p.StartDate)
}

func TestClone_Independent(t *testing.T) {
	p := NewProgress(testNow)
	p.MarkComplete(1, 1, testNow)

	clone := p.Clone()
	clone.MarkComplete(2, 2, testNow)

	assert.Len(t, p.CompletedReadings, 1)
	assert.Len(t, clone.CompletedReadings, 2)
}

func TestProgress_JSONRoundTrip(t *testing.T) {
	p := NewProgress(testNow)
	p.MarkComplete(89, 1, testNow)
	p.MarkComplete(90, 10, testNow)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded Progress
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, p.CompletedReadings.Sorted(), decoded.CompletedReadings.Sorted())
	assert.Equal(t, p.StreakCount, decoded.StreakCount)
	assert.Equal(t, p.LastReadDate, decoded.LastReadDate)
	assert.Equal(t, p.TotalChaptersRead, decoded.TotalChaptersRead)
	assert.Equal(t, p.StartDate, decoded.StartDate)
}

func TestMergeProgress(t *testing.T) {
	local := &Progress{
		CompletedReadings: NewKeySet("1-1", "2-2"),
		StreakCount:       3,
		LastReadDate:      "2025-06-14",
		TotalChaptersRead: 2,
		StartDate:         "2025-03-01",
	}
	remote := &Progress{
		CompletedReadings: NewKeySet("2-2", "3-3", "4-4"),
		StreakCount:       7,
		LastReadDate:      "2025-06-10",
		TotalChaptersRead: 3,
		StartDate:         "2025-01-15",
	}

	merged := MergeProgress(local, remote)

	assert.Equal(t, []string{"1-1", "2-2", "3-3", "4-4"}, merged.CompletedReadings.Sorted())
	assert.Equal(t, 7, merged.StreakCount)
	assert.Equal(t, "2025-06-10", merged.LastReadDate, "remote last read date wins when present")
	assert.Equal(t, 4, merged.TotalChaptersRead, "total recomputed from merged keys")
	assert.Equal(t, "2025-01-15", merged.StartDate, "earliest start date wins")
}

func TestMergeProgress_RemoteLastReadAbsent(t *testing.T) {
	local := &Progress{
		CompletedReadings: NewKeySet("1-1"),
		LastReadDate:      "2025-06-14",
		StartDate:         "2025-03-01",
	}
	remote := &Progress{
		CompletedReadings: make(KeySet),
		StartDate:         "2025-04-01",
	}

	merged := MergeProgress(local, remote)
	assert.Equal(t, "2025-06-14", merged.LastReadDate)
	assert.Equal(t, "2025-03-01", merged.StartDate)
}

func TestMergeProgress_CommutativeAndIdempotent(t *testing.T) {
	a := &Progress{
		CompletedReadings: NewKeySet("1-1", "5-5"),
		StreakCount:       2,
		StartDate:         "2025-02-01",
	}
	b := &Progress{
		CompletedReadings: NewKeySet("5-5", "9-9"),
		StreakCount:       4,
		StartDate:         "2025-05-01",
	}

	ab := MergeProgress(a, b)
	ba := MergeProgress(b, a)
	assert.Equal(t, ab.CompletedReadings.Sorted(), ba.CompletedReadings.Sorted())
	assert.Equal(t, ab.StreakCount, ba.StreakCount)
	assert.Equal(t, ab.StartDate, ba.StartDate)
	assert.Equal(t, ab.TotalChaptersRead, ba.TotalChaptersRead)

	again := MergeProgress(a, ab)
	assert.Equal(t, ab.CompletedReadings.Sorted(), again.CompletedReadings.Sorted())
	assert.Equal(t, ab.StreakCount, again.StreakCount)
	assert.Equal(t, ab.StartDate, again.StartDate)
}

func TestKeySet_MarshalSorted(t *testing.T) {
	s := NewKeySet("10-2", "2-1", "1-10")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["1-10","10-2","2-1"]`, string(data))
}
