package models

import "time"

// ConsoleEvent is broadcast between console instances and pushed to open browser tabs.
type ConsoleEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Entity     string    `json:"entity,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	SessionID  string    `json:"-"`
	OccurredAt time.Time `json:"occurred_at"`
}
