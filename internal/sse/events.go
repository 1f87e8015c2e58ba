// Package sse implements Server-Sent Events for broadcasting reading
// progress changes, milestone unlocks, and sync status to connected clients.
package sse

import (
	"time"

	"github.com/hornerapp/horner-server/internal/domain"
	"github.com/hornerapp/horner-server/internal/id"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventProgressUpdated represents a change to an account's progress snapshot.
	EventProgressUpdated EventType = "progress.updated"

	// EventMilestoneUnlocked represents a milestone crossing.
	// Milestones are ephemeral: they are broadcast once and never persisted.
	EventMilestoneUnlocked EventType = "milestone.unlocked"

	// EventSyncStatus represents a change in remote sync state.
	EventSyncStatus EventType = "sync.status"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
// The Data field contains the event payload as a JSON object for direct deserialization.
// ID doubles as the SSE id field so clients can detect missed events on reconnect.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	ID        string    `json:"id"`
	Type      EventType `json:"type"`

	// AccountID filters delivery to clients of one account.
	// Empty string means broadcast to all (not sent to the client).
	AccountID string `json:"-"`
}

// ProgressEventData is the data payload for progress update events.
type ProgressEventData struct {
	Progress *domain.Progress `json:"progress"`
}

// MilestoneEventData is the data payload for milestone unlock events.
type MilestoneEventData struct {
	Milestone *domain.Milestone `json:"milestone"`
}

// SyncStatusEventData is the data payload for sync status events.
type SyncStatusEventData struct {
	Status   string `json:"status"` // "idle", "syncing", "synced", "error"
	SyncedAt string `json:"synced_at,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HeartbeatEventData is the data payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"server_time"`
}

// NewProgressUpdatedEvent creates a progress update event for an account.
func NewProgressUpdatedEvent(accountID string, progress *domain.Progress) Event {
	return Event{
		ID:        id.NewEventID(),
		Type:      EventProgressUpdated,
		Timestamp: time.Now(),
		AccountID: accountID,
		Data:      ProgressEventData{Progress: progress},
	}
}

// NewMilestoneUnlockedEvent creates a milestone event for an account.
func NewMilestoneUnlockedEvent(accountID string, milestone *domain.Milestone) Event {
	return Event{
		ID:        id.NewEventID(),
		Type:      EventMilestoneUnlocked,
		Timestamp: time.Now(),
		AccountID: accountID,
		Data:      MilestoneEventData{Milestone: milestone},
	}
}

// NewSyncStatusEvent creates a sync status event for an account.
func NewSyncStatusEvent(accountID string, data SyncStatusEventData) Event {
	return Event{
		ID:        id.NewEventID(),
		Type:      EventSyncStatus,
		Timestamp: time.Now(),
		AccountID: accountID,
		Data:      data,
	}
}

// NewHeartbeatEvent creates a heartbeat event.
func NewHeartbeatEvent() Event {
	return Event{
		ID:        id.NewEventID(),
		Type:      EventHeartbeat,
		Timestamp: time.Now(),
		Data:      HeartbeatEventData{ServerTime: time.Now()},
	}
}
