package service

import (
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hornerapp/horner-server/internal/domain"
	"github.com/hornerapp/horner-server/internal/sse"
	"github.com/hornerapp/horner-server/internal/store"
	"github.com/stretchr/testify/require"
)

// testNow is a fixed Sunday in mid-June: day of year 166.
var testNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir(), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// fakeEmitter records every emitted event.
type fakeEmitter struct {
	mu     sync.Mutex
	events []sse.Event
}

func (f *fakeEmitter) Emit(event sse.Event) {
	f.mu.Lock()
	f.events = append(f.events, event)
	f.mu.Unlock()
}

func (f *fakeEmitter) byType(eventType sse.EventType) []sse.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []sse.Event
	for _, e := range f.events {
		if e.Type == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

// fakeSyncer records scheduled snapshots.
type fakeSyncer struct {
	mu        sync.Mutex
	schedules map[string]int
}

func newFakeSyncer() *fakeSyncer {
	return &fakeSyncer{schedules: make(map[string]int)}
}

func (f *fakeSyncer) Schedule(accountID string, _ *domain.Progress) {
	f.mu.Lock()
	f.schedules[accountID]++
	f.mu.Unlock()
}

func (f *fakeSyncer) count(accountID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.schedules[accountID]
}

func newTestProgressService(t *testing.T) (*ProgressService, *fakeEmitter, *fakeSyncer) {
	t.Helper()
	emitter := &fakeEmitter{}
	syncer := newFakeSyncer()
	svc := NewProgressService(setupTestStore(t), emitter, syncer, nil, testLogger())
	svc.now = func() time.Time { return testNow }
	return svc, emitter, syncer
}
