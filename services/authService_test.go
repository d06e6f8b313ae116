package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Suyogg2003/Employee-task-manager/domain"
	"github.com/Suyogg2003/Employee-task-manager/repositories"

	"go.opentelemetry.io/otel"
)

func newTestAuthService() *AuthService {
	return NewAuthService(repositories.NewUserInMem(), []byte("test-secret"), otel.Tracer("test"))
}

func TestRegisterAndTokenRoundtrip(t *testing.T) {
	svc := newTestAuthService()

	user, err := svc.Register(context.Background(), "Evan", "Evan@Example.com", "hunter22", "Employee")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "evan@example.com" {
		t.Errorf("email = %q, want normalized lower case", user.Email)
	}
	if user.Role != domain.Employee {
		t.Errorf("role = %s, want Employee", user.Role)
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plain text")
	}

	token, err := svc.CreateToken(user)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != user.Id.Hex() {
		t.Errorf("claims userId = %q, want %q", claims.UserID, user.Id.Hex())
	}
	if claims.Role != "Employee" {
		t.Errorf("claims role = %q, want Employee", claims.Role)
	}
}

func TestRegisterRejectsDuplicateAndBadRole(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Register(context.Background(), "Evan", "evan@example.com", "hunter22", "Employee"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Evan", "evan@example.com", "hunter22", "Employee"); !errors.Is(err, domain.ErrUserAlreadyExists()) {
		t.Errorf("duplicate register err = %v, want user already exists", err)
	}
	if _, err := svc.Register(context.Background(), "Sam", "sam@example.com", "hunter22", "Admin"); !errors.Is(err, domain.ErrInvalidRole()) {
		t.Errorf("bad role err = %v, want invalid role", err)
	}
}

func TestVerifyTokenRejectsForgedToken(t *testing.T) {
	svc := newTestAuthService()
	other := NewAuthService(repositories.NewUserInMem(), []byte("other-secret"), otel.Tracer("test"))

	user, err := other.Register(context.Background(), "Mallory", "mallory@example.com", "hunter22", "Employee")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	forged, err := other.CreateToken(user)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := svc.VerifyToken(forged); !errors.Is(err, domain.ErrInvalidToken()) {
		t.Errorf("forged token err = %v, want token invalid", err)
	}
	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, domain.ErrInvalidToken()) {
		t.Errorf("garbage token err = %v, want token invalid", err)
	}
}

func TestLogInChecksCredentials(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.Register(context.Background(), "Evan", "evan@example.com", "hunter22", "Employee"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.LogIn(context.Background(), "evan@example.com", "hunter22"); err != nil {
		t.Errorf("valid login: %v", err)
	}
	if _, err := svc.LogIn(context.Background(), "evan@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials()) {
		t.Errorf("wrong password err = %v, want invalid credentials", err)
	}
	if _, err := svc.LogIn(context.Background(), "nobody@example.com", "hunter22"); !errors.Is(err, domain.ErrInvalidCredentials()) {
		t.Errorf("unknown user err = %v, want invalid credentials", err)
	}
}
