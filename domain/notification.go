package domain

import (
	"context"
	"time"
)

// Notification is one entry in a user's event feed, written when a task
// is assigned or its status changes.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	GetAllByUserID(ctx context.Context, userID string) ([]Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) error
}
