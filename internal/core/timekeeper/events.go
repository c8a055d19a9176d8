package timekeeper

import "time"

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange  EventType = "state_change"
	EventProgress     EventType = "progress"
	EventCompleted    EventType = "completed"
	EventUnlocked     EventType = "unlocked"
	EventStorageError EventType = "storage_error"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot State
	Message  string
	At       time.Time
}
