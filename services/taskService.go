package services

import (
	"context"
	"errors"
	"time"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type TaskService struct {
	tasks         domain.TaskRepository
	notifications *NotificationService
	tracer        trace.Tracer
}

func NewTaskService(tasks domain.TaskRepository, notifications *NotificationService, tracer trace.Tracer) *TaskService {
	return &TaskService{tasks: tasks, notifications: notifications, tracer: tracer}
}

// Create makes a new task for an employee. Status always starts at
// Pending regardless of what the caller sent.
func (s *TaskService) Create(ctx context.Context, title, description, assignedTo, createdBy string) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.Create")
	defer span.End()

	assigneeID, err := primitive.ObjectIDFromHex(assignedTo)
	if err != nil {
		return domain.Task{}, domain.ErrInvalidID()
	}
	creatorID, err := primitive.ObjectIDFromHex(createdBy)
	if err != nil {
		return domain.Task{}, domain.ErrInvalidID()
	}

	task := domain.Task{
		Title:       title,
		Description: description,
		Status:      domain.Pending,
		AssignedTo:  assigneeID,
		CreatedBy:   creatorID,
		CreatedAt:   time.Now(),
	}

	created, err := s.tasks.Insert(ctx, task)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Task{}, err
	}

	s.notifications.Notify(ctx, created.AssignedTo.Hex(), "You have been assigned task "+created.Title)

	return created, nil
}

func (s *TaskService) GetAll(ctx context.Context) (domain.Tasks, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.GetAll")
	defer span.End()

	return s.tasks.GetAll(ctx)
}

// GetMine returns the tasks assigned to the requesting user, newest
// first.
func (s *TaskService) GetMine(ctx context.Context, userId string) (domain.Tasks, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.GetMine")
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, domain.ErrInvalidID()
	}

	return s.tasks.GetByAssignee(ctx, objID)
}

// Update is the manager-only full edit path. Unlike UpdateStatus it may
// set any field, including moving the status freely, and reassign the
// task.
func (s *TaskService) Update(ctx context.Context, id, title, description, status, assignedTo string) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.Update")
	defer span.End()

	existing, err := s.tasks.FindById(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Task{}, err
	}

	if title != "" {
		existing.Title = title
	}
	if description != "" {
		existing.Description = description
	}
	if status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return domain.Task{}, err
		}
		existing.Status = parsed
	}
	if assignedTo != "" {
		assigneeID, err := primitive.ObjectIDFromHex(assignedTo)
		if err != nil {
			return domain.Task{}, domain.ErrInvalidID()
		}
		existing.AssignedTo = assigneeID
	}

	updated, err := s.tasks.Update(ctx, *existing)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Task{}, err
	}

	s.notifications.Notify(ctx, updated.AssignedTo.Hex(), "Task "+updated.Title+" was updated")

	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "TaskService.Delete")
	defer span.End()

	return s.tasks.Delete(ctx, id)
}

// UpdateStatus advances a task through the forward-only progression on
// behalf of its assignee. The persist is guarded by a compare-and-swap
// on the status read at decision time; a lost race is retried once and
// then surfaced as a conflict.
func (s *TaskService) UpdateStatus(ctx context.Context, taskId, requesterId, requested string) (*domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "TaskService.UpdateStatus")
	defer span.End()

	const attempts = 2

	var lastErr error
	for i := 0; i < attempts; i++ {
		task, err := s.tasks.FindById(ctx, taskId)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		if err := authorize(requesterId, task); err != nil {
			return nil, err
		}

		decision := domain.Decide(task.Status, requested)
		switch decision.Outcome {
		case domain.RejectedInvalid:
			return nil, domain.ErrInvalidStatus(requested)
		case domain.RejectedBackward:
			return nil, domain.ErrInvalidTransition(task.Status, domain.Status(requested))
		case domain.NoChange:
			// Same-status resubmission succeeds without a write.
			return task, nil
		}

		updated, err := s.tasks.UpdateStatus(ctx, task.Id, task.Status, decision.Next)
		if err == nil {
			s.notifications.Notify(ctx, updated.AssignedTo.Hex(),
				"Task "+updated.Title+" moved to "+decision.Next.String())
			return updated, nil
		}
		if !errors.Is(err, domain.ErrStatusConflict()) {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// authorize allows the status mutation only for the task's assignee.
// Role is deliberately not consulted: a manager gets no bypass here,
// full edits go through Update instead.
func authorize(requesterId string, task *domain.Task) error {
	if task.AssignedTo.Hex() != requesterId {
		return domain.ErrNotTaskOwner()
	}
	return nil
}
