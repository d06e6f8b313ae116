package domain

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      Status             `bson:"status" json:"status"`
	AssignedTo  primitive.ObjectID `bson:"assignedTo" json:"assignedTo"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type Tasks []*Task

func (t *Tasks) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(t)
}

// TaskRepository is the store boundary the task service talks to. Both
// the Mongo repository and the in-memory test repository implement it.
type TaskRepository interface {
	Insert(ctx context.Context, task Task) (Task, error)
	FindById(ctx context.Context, id string) (*Task, error)
	GetAll(ctx context.Context) (Tasks, error)
	GetByAssignee(ctx context.Context, userId primitive.ObjectID) (Tasks, error)
	Update(ctx context.Context, task Task) (Task, error)
	// UpdateStatus persists next only if the stored status still equals
	// expected, returning ErrStatusConflict otherwise.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, expected, next Status) (*Task, error)
	Delete(ctx context.Context, id string) error
}
