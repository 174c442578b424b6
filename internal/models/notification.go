package models

import "time"

// Notification is a transient, user-visible message about an operation outcome.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsError   bool      `json:"is_error"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
