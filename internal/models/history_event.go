package models

import "time"

// History audit event types.
const (
	EventAdd    = "ADD"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
	EventClear  = "CLEAR"
)

// HistoryEvent is a single audit log entry for a history mutation.
type HistoryEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // ADD | UPDATE | DELETE | CLEAR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
