package repositories

import (
	"context"
	"sync"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userInMemRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

func NewUserInMem() domain.UserRepository {
	return &userInMemRepository{
		users: make(map[primitive.ObjectID]domain.User),
	}
}

func (r *userInMemRepository) Insert(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	r.users[user.Id] = user
	return user, nil
}

func (r *userInMemRepository) GetById(_ context.Context, id string) (*domain.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[objID]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	return &user, nil
}

func (r *userInMemRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound()
}

func (r *userInMemRepository) GetByRole(_ context.Context, role domain.Role) (domain.Users, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make(domain.Users, 0)
	for _, user := range r.users {
		if user.Role == role {
			u := user
			users = append(users, &u)
		}
	}
	return users, nil
}

func (r *userInMemRepository) Update(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.Id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	user.Role = existing.Role
	user.CreatedAt = existing.CreatedAt
	r.users[user.Id] = user
	return user, nil
}

func (r *userInMemRepository) Delete(_ context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[objID]; !ok {
		return domain.ErrUserNotFound()
	}
	delete(r.users, objID)
	return nil
}
