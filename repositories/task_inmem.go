package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// taskInMemRepository keeps tasks in a map guarded by a mutex. It
// honors the same compare-and-swap contract on UpdateStatus as the
// Mongo repository so the conflict path is exercisable without a
// database.
type taskInMemRepository struct {
	mu    sync.Mutex
	tasks map[primitive.ObjectID]domain.Task
}

func NewTaskInMem() domain.TaskRepository {
	return &taskInMemRepository{
		tasks: make(map[primitive.ObjectID]domain.Task),
	}
}

func (r *taskInMemRepository) Insert(_ context.Context, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.Id.IsZero() {
		task.Id = primitive.NewObjectID()
	}
	r.tasks[task.Id] = task
	return task, nil
}

func (r *taskInMemRepository) FindById(_ context.Context, id string) (*domain.Task, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[objID]
	if !ok {
		return nil, domain.ErrTaskNotFound()
	}
	return &task, nil
}

func (r *taskInMemRepository) GetAll(_ context.Context) (domain.Tasks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make(domain.Tasks, 0, len(r.tasks))
	for _, task := range r.tasks {
		t := task
		tasks = append(tasks, &t)
	}
	sortNewestFirst(tasks)
	return tasks, nil
}

func (r *taskInMemRepository) GetByAssignee(_ context.Context, userId primitive.ObjectID) (domain.Tasks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make(domain.Tasks, 0)
	for _, task := range r.tasks {
		if task.AssignedTo == userId {
			t := task
			tasks = append(tasks, &t)
		}
	}
	sortNewestFirst(tasks)
	return tasks, nil
}

func (r *taskInMemRepository) Update(_ context.Context, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.Id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound()
	}
	task.CreatedBy = existing.CreatedBy
	task.CreatedAt = existing.CreatedAt
	r.tasks[task.Id] = task
	return task, nil
}

func (r *taskInMemRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, expected, next domain.Status) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound()
	}
	if task.Status != expected {
		return nil, domain.ErrStatusConflict()
	}
	task.Status = next
	r.tasks[id] = task
	return &task, nil
}

func (r *taskInMemRepository) Delete(_ context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[objID]; !ok {
		return domain.ErrTaskNotFound()
	}
	delete(r.tasks, objID)
	return nil
}

func sortNewestFirst(tasks domain.Tasks) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}
