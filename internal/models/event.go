package models

import "time"

// Event represents an entry in the audit trail.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g., "auth.signup", "auth.signin"
	Level     string    `json:"level"` // e.g., "info", "warn"
	Message   string    `json:"message"`
	Actor     *string   `json:"actor,omitempty"` // Nullable for anonymous requests
	CreatedAt time.Time `json:"createdAt"`
}
