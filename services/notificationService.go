package services

import (
	"context"
	"log"
	"time"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"github.com/eapache/go-resiliency/retrier"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/trace"
)

// NotificationService records task events in the notification log. The
// log is a best-effort side channel: writes are retried and guarded by
// a circuit breaker, and failures are logged without surfacing to the
// caller so an outage cannot block the task flow.
type NotificationService struct {
	repo   domain.NotificationRepository
	cb     *gobreaker.CircuitBreaker[interface{}]
	logger *log.Logger
	tracer trace.Tracer
}

func NewNotificationService(repo domain.NotificationRepository, logger *log.Logger, tracer trace.Tracer) *NotificationService {
	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        "NotificationServiceCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Printf("Circuit Breaker '%s' changed from '%s' to '%s'\n", name, from, to)
		},
	})

	return &NotificationService{repo: repo, cb: cb, logger: logger, tracer: tracer}
}

// Notify appends a message to the user's feed.
func (s *NotificationService) Notify(ctx context.Context, userId, message string) {
	_, span := s.tracer.Start(ctx, "NotificationService.Notify")
	defer span.End()

	notification := &domain.Notification{
		UserID:    userId,
		Message:   message,
		CreatedAt: time.Now(),
		IsRead:    false,
	}

	_, err := s.cb.Execute(func() (interface{}, error) {
		r := retrier.New(retrier.ConstantBackoff(3, 100*time.Millisecond), nil)
		err := r.Run(func() error {
			writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return s.repo.Create(writeCtx, notification)
		})
		return nil, err
	})
	if err != nil {
		s.logger.Printf("Failed to record notification for user %s: %v", userId, err)
	}
}

func (s *NotificationService) GetAllByUserID(ctx context.Context, userId string) ([]domain.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "NotificationService.GetAllByUserID")
	defer span.End()

	return s.repo.GetAllByUserID(ctx, userId)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userId string) error {
	ctx, span := s.tracer.Start(ctx, "NotificationService.MarkAllAsRead")
	defer span.End()

	return s.repo.MarkAllAsRead(ctx, userId)
}
