package services

import (
	"context"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type UserService struct {
	users  domain.UserRepository
	tracer trace.Tracer
}

func NewUserService(r domain.UserRepository, t trace.Tracer) *UserService {
	return &UserService{users: r, tracer: t}
}

// GetEmployees lists the accounts a manager can assign tasks to.
func (s *UserService) GetEmployees(ctx context.Context) (domain.Users, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetEmployees")
	defer span.End()

	return s.users.GetByRole(ctx, domain.Employee)
}

// Update is the manager edit path for user details. Passwords are not
// accepted here, the dedicated password route handles those.
func (s *UserService) Update(ctx context.Context, id, name, email string) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.Update")
	defer span.End()

	user, err := s.users.GetById(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.User{}, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}

	return s.users.Update(ctx, *user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "UserService.Delete")
	defer span.End()

	return s.users.Delete(ctx, id)
}
