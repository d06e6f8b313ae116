package repositories

import (
	"context"
	"log"
	"time"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel/trace"
)

type TaskRepo struct {
	cli    *mongo.Client
	logger *log.Logger
	tracer trace.Tracer
}

// NewTaskRepo connects to MongoDB and returns a task repository.
func NewTaskRepo(ctx context.Context, uri string, logger *log.Logger, tracer trace.Tracer) (*TaskRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	return &TaskRepo{
		cli:    client,
		logger: logger,
		tracer: tracer,
	}, nil
}

func (tr *TaskRepo) Disconnect(ctx context.Context) error {
	return tr.cli.Disconnect(ctx)
}

// Check database connection
func (tr *TaskRepo) Ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tr.cli.Ping(ctx, readpref.Primary()); err != nil {
		tr.logger.Println(err)
	}
}

func (tr *TaskRepo) getCollection() *mongo.Collection {
	return tr.cli.Database("taskmanager").Collection("tasks")
}

func (tr *TaskRepo) Insert(ctx context.Context, task domain.Task) (domain.Task, error) {
	ctx, span := tr.tracer.Start(ctx, "TaskRepo.Insert")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := tr.getCollection().InsertOne(ctx, task)
	if err != nil {
		tr.logger.Println(err)
		return domain.Task{}, err
	}

	task.Id = result.InsertedID.(primitive.ObjectID)
	return task, nil
}

func (tr *TaskRepo) FindById(ctx context.Context, id string) (*domain.Task, error) {
	ctx, span := tr.tracer.Start(ctx, "TaskRepo.FindById")
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var task domain.Task
	err = tr.getCollection().FindOne(ctx, bson.M{"_id": objID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTaskNotFound()
		}
		tr.logger.Println(err)
		return nil, err
	}

	return &task, nil
}

func (tr *TaskRepo) GetAll(ctx context.Context) (domain.Tasks, error) {
	ctx, span := tr.tracer.Start(ctx, "TaskRepo.GetAll")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Newest tasks first
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var tasks domain.Tasks
	cursor, err := tr.getCollection().Find(ctx, bson.M{}, opts)
	if err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	if err = cursor.All(ctx, &tasks); err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	return tasks, nil
}

func (tr *TaskRepo) GetByAssignee(ctx context.Context, userId primitive.ObjectID) (domain.Tasks, error) {
	ctx, span := tr.tracer.Start(ctx, "TaskRepo.GetByAssignee")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var tasks domain.Tasks
	cursor, err := tr.getCollection().Find(ctx, bson.M{"assignedTo": userId}, opts)
	if err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	if err = cursor.All(ctx, &tasks); err != nil {
		tr.logger.Println(err)
		return nil, err
	}
	return tasks, nil
}

func (tr *TaskRepo) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	ctx, span := tr.tracer.Start(ctx, "TaskRepo.Update")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": task.Id}
	update := bson.M{"$set": bson.M{
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status,
		"assignedTo":  task.AssignedTo,
	}}

	result, err := tr.getCollection().UpdateOne(ctx, filter, update)
	if err != nil {
		tr.logger.Println(err)
		return domain.Task{}, err
	}
	if result.MatchedCount == 0 {
		return domain.Task{}, domain.ErrTaskNotFound()
	}

	return task, nil
}

// UpdateStatus persists next only if the stored status still equals
// expected. A filter miss on an existing task means another writer got
// there first and the caller must re-read before retrying.
func (tr *TaskRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, expected, next domain.Status) (*domain.Task, error) {
	ctx, span := tr.tracer.Start(ctx, "TaskRepo.UpdateStatus")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id, "status": expected}
	update := bson.M{"$set": bson.M{"status": next}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task domain.Task
	err := tr.getCollection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Distinguish a lost race from a deleted task.
			count, countErr := tr.getCollection().CountDocuments(ctx, bson.M{"_id": id})
			if countErr == nil && count > 0 {
				return nil, domain.ErrStatusConflict()
			}
			return nil, domain.ErrTaskNotFound()
		}
		tr.logger.Println(err)
		return nil, err
	}

	return &task, nil
}

func (tr *TaskRepo) Delete(ctx context.Context, id string) error {
	ctx, span := tr.tracer.Start(ctx, "TaskRepo.Delete")
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := tr.getCollection().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		tr.logger.Println(err)
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound()
	}
	return nil
}
