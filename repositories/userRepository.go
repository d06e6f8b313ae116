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

type UserRepo struct {
	cli    *mongo.Client
	logger *log.Logger
	tracer trace.Tracer
}

func NewUserRepo(ctx context.Context, uri string, logger *log.Logger, tracer trace.Tracer) (*UserRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	return &UserRepo{
		cli:    client,
		logger: logger,
		tracer: tracer,
	}, nil
}

func (ur *UserRepo) Disconnect(ctx context.Context) error {
	return ur.cli.Disconnect(ctx)
}

func (ur *UserRepo) Ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ur.cli.Ping(ctx, readpref.Primary()); err != nil {
		ur.logger.Println(err)
	}
}

func (ur *UserRepo) getCollection() *mongo.Collection {
	return ur.cli.Database("taskmanager").Collection("users")
}

func (ur *UserRepo) Insert(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, span := ur.tracer.Start(ctx, "UserRepo.Insert")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := ur.getCollection().InsertOne(ctx, user)
	if err != nil {
		ur.logger.Println(err)
		return domain.User{}, err
	}

	user.Id = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (ur *UserRepo) GetById(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := ur.tracer.Start(ctx, "UserRepo.GetById")
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user domain.User
	err = ur.getCollection().FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound()
		}
		ur.logger.Println(err)
		return nil, err
	}
	return &user, nil
}

func (ur *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := ur.tracer.Start(ctx, "UserRepo.GetByEmail")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user domain.User
	err := ur.getCollection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound()
		}
		ur.logger.Println(err)
		return nil, err
	}
	return &user, nil
}

func (ur *UserRepo) GetByRole(ctx context.Context, role domain.Role) (domain.Users, error) {
	ctx, span := ur.tracer.Start(ctx, "UserRepo.GetByRole")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var users domain.Users
	cursor, err := ur.getCollection().Find(ctx, bson.M{"role": role})
	if err != nil {
		ur.logger.Println(err)
		return nil, err
	}
	if err = cursor.All(ctx, &users); err != nil {
		ur.logger.Println(err)
		return nil, err
	}
	return users, nil
}

func (ur *UserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, span := ur.tracer.Start(ctx, "UserRepo.Update")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": user.Id}
	update := bson.M{"$set": bson.M{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.Password,
	}}

	result, err := ur.getCollection().UpdateOne(ctx, filter, update)
	if err != nil {
		ur.logger.Println(err)
		return domain.User{}, err
	}
	if result.MatchedCount == 0 {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return user, nil
}

func (ur *UserRepo) Delete(ctx context.Context, id string) error {
	ctx, span := ur.tracer.Start(ctx, "UserRepo.Delete")
	defer span.End()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := ur.getCollection().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		ur.logger.Println(err)
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}
