package repositories

import (
	"context"
	"sync"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"github.com/google/uuid"
)

type notificationInMemRepository struct {
	mu            sync.Mutex
	notifications map[string][]domain.Notification
}

func NewNotificationInMem() domain.NotificationRepository {
	return &notificationInMemRepository{
		notifications: make(map[string][]domain.Notification),
	}
}

func (r *notificationInMemRepository) Create(_ context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := *notification
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	r.notifications[n.UserID] = append(r.notifications[n.UserID], n)
	return nil
}

func (r *notificationInMemRepository) GetAllByUserID(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.notifications[userID]
	out := make([]domain.Notification, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *notificationInMemRepository) MarkAllAsRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.notifications[userID]
	for i := range stored {
		stored[i].IsRead = true
	}
	return nil
}
