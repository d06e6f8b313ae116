package domain

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	Manager  Role = "Manager"
	Employee Role = "Employee"
)

func (r Role) String() string {
	return string(r)
}

// RoleFromString validates a role literal. Roles are fixed at
// registration, there is no role-change operation.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case Manager, Employee:
		return Role(s), nil
	default:
		return "", errors.New("invalid role")
	}
}

type User struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Users []*User

func (u *Users) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(u)
}

type UserRepository interface {
	Insert(ctx context.Context, user User) (User, error)
	GetById(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByRole(ctx context.Context, role Role) (Users, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id string) error
}
