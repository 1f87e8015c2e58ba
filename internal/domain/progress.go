package domain

import (
	"encoding/json/v2"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for all ledger dates. Dates in this
// layout compare correctly as strings, which the merge rules rely on.
const DateLayout = "2006-01-02"

// FormatDate renders a calendar date in the ledger's ISO layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CompletionKey builds the canonical "{dayOfYear}-{listId}" key. Presence of
// a key in the ledger's set is the sole source of truth for completion.
func CompletionKey(dayOfYear, listID int) string {
	return strconv.Itoa(dayOfYear) + "-" + strconv.Itoa(listID)
}

// KeySet is a set of completion keys. It serializes as a sorted JSON array
// so snapshots are canonical and round-trip exactly.
type KeySet map[string]struct{}

// NewKeySet builds a set from a list of keys, dropping duplicates.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports set membership.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts a key, reporting whether it was newly added.
func (s KeySet) Add(key string) bool {
	if s.Has(key) {
		return false
	}
	s[key] = struct{}{}
	return true
}

// Remove deletes a key, reporting whether it was present.
func (s KeySet) Remove(key string) bool {
	if !s.Has(key) {
		return false
	}
	delete(s, key)
	return true
}

// Union returns a new set containing every key from both sets.
func (s KeySet) Union(other KeySet) KeySet {
	merged := make(KeySet, len(s)+len(other))
	for k := range s {
		merged[k] = struct{}{}
	}
	for k := range other {
		merged[k] = struct{}{}
	}
	return merged
}

// Sorted returns the keys in ascending order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MarshalJSON encodes the set as a sorted array of keys.
func (s KeySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of keys into the set.
func (s *KeySet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*s = NewKeySet(keys...)
	return nil
}

// Progress is the ledger of completed readings plus streak bookkeeping.
// It is mutated only through MarkComplete, MarkIncomplete, and Toggle, and
// persisted as a whole snapshot after every mutation.
type Progress struct {
	CompletedReadings KeySet `json:"completedReadings"`
	StreakCount       int    `json:"streakCount"`
	LastReadDate      string `json:"lastReadDate,omitempty"`
	TotalChaptersRead int    `json:"totalChaptersRead"`
	StartDate         string `json:"startDate"`
}

// NewProgress returns an empty ledger with the start date set to now.
func NewProgress(now time.Time) *Progress {
	return &Progress{
		CompletedReadings: make(KeySet),
		StartDate:         FormatDate(now),
	}
}

// MarkComplete records a completed reading. It is idempotent: marking an
// already-complete reading changes nothing. The streak is keyed to the real
// calendar date of the action (now), not the reading day being marked.
// Returns true if the key was newly added.
func (p *Progress) MarkComplete(dayOfYear, listID int, now time.Time) bool {
	if !p.CompletedReadings.Add(CompletionKey(dayOfYear, listID)) {
		return false
	}

	today := FormatDate(now)
	yesterday := FormatDate(now.AddDate(0, 0, -1))

	switch p.LastReadDate {
	case yesterday:
		p.StreakCount++
	case today:
		// Already read today, streak unchanged.
	default:
		p.StreakCount = 1
	}
	p.LastReadDate = today
	p.TotalChaptersRead++
	return true
}

// MarkIncomplete removes a completed reading. The streak is deliberately not
// rolled back: streak state is a forward-only ratchet driven by completion
// events. Returns true if the key was present.
func (p *Progress) MarkIncomplete(dayOfYear, listID int) bool {
	if !p.CompletedReadings.Remove(CompletionKey(dayOfYear, listID)) {
		return false
	}
	p.TotalChaptersRead = max(0, p.TotalChaptersRead-1)
	return true
}

// Toggle flips completion state for the (day, list) pair. It is the sole
// mutation entry point exposed to callers. Returns the resulting state.
func (p *Progress) Toggle(dayOfYear, listID int, now time.Time) (completed bool) {
	if p.CompletedReadings.Has(CompletionKey(dayOfYear, listID)) {
		p.MarkIncomplete(dayOfYear, listID)
		return false
	}
	p.MarkComplete(dayOfYear, listID, now)
	return true
}

// IsComplete reports whether the (day, list) pair is marked complete.
func (p *Progress) IsComplete(dayOfYear, listID int) bool {
	return p.CompletedReadings.Has(CompletionKey(dayOfYear, listID))
}

// CompletedForDay counts completed readings for a day, in [0, ListCount].
func (p *Progress) CompletedForDay(dayOfYear int) int {
	prefix := strconv.Itoa(dayOfYear) + "-"
	count := 0
	for key := range p.CompletedReadings {
		if strings.HasPrefix(key, prefix) {
			count++
		}
	}
	return count
}

// IsDayComplete reports whether all ten lists are complete for the day.
func (p *Progress) IsDayComplete(dayOfYear int) bool {
	return p.CompletedForDay(dayOfYear) == ListCount
}

// CompletedForList counts completed readings belonging to a list.
func (p *Progress) CompletedForList(listID int) int {
	suffix := "-" + strconv.Itoa(listID)
	count := 0
	for key := range p.CompletedReadings {
		if strings.HasSuffix(key, suffix) {
			count++
		}
	}
	return count
}

// Reset replaces the ledger with fresh defaults, start date set to now.
func (p *Progress) Reset(now time.Time) {
	*p = *NewProgress(now)
}

// Clone returns a deep copy of the ledger. Used to hand snapshots to the
// sync layer without sharing the live key set.
func (p *Progress) Clone() *Progress {
	clone := *p
	clone.CompletedReadings = p.CompletedReadings.Union(nil)
	return &clone
}

// MergeProgress reconciles a local ledger with a remote copy:
// union of keys, max streak, remote-else-local last read date, recomputed
// total, earliest start date. The merge is commutative and idempotent on the
// key set and the date/streak extremes.
func MergeProgress(local, remote *Progress) *Progress {
	merged := &Progress{
		CompletedReadings: local.CompletedReadings.Union(remote.CompletedReadings),
		StreakCount:       max(local.StreakCount, remote.StreakCount),
		LastReadDate:      local.LastReadDate,
		StartDate:         local.StartDate,
	}
	if remote.LastReadDate != "" {
		merged.LastReadDate = remote.LastReadDate
	}
	// ISO dates compare lexicographically; earliest start date wins.
	if remote.StartDate != "" && (merged.StartDate == "" || remote.StartDate < merged.StartDate) {
		merged.StartDate = remote.StartDate
	}
	merged.TotalChaptersRead = len(merged.CompletedReadings)
	return merged
}
