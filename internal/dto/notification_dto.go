package dto

import (
	"time"

	"github.com/noah-isme/alhafizh-api/internal/models"
)

// NotificationResponse serializes a transient notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsError   bool      `json:"is_error"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewNotificationResponse converts a notification model into a DTO.
func NewNotificationResponse(notification models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Message:   notification.Message,
		IsError:   notification.IsError,
		CreatedAt: notification.CreatedAt,
		ExpiresAt: notification.ExpiresAt,
	}
}

// ConfirmationResponse describes a pending destructive action awaiting confirmation.
type ConfirmationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ExpiresAt time.Time `json:"expires_at"`
}
