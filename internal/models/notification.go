package models

import "time"

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is a transient user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // success | error
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
