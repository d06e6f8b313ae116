package services

import (
	"context"
	"strings"
	"time"

	"github.com/Suyogg2003/Employee-task-manager/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims is the resolved identity carried by a verified token.
type TokenClaims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Exp    int64  `json:"exp"`
}

type AuthService struct {
	users     domain.UserRepository
	secretKey []byte
	tracer    trace.Tracer
}

func NewAuthService(r domain.UserRepository, secretKey []byte, t trace.Tracer) *AuthService {
	return &AuthService{users: r, secretKey: secretKey, tracer: t}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string, role string) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "Auth.Register")
	defer span.End()

	parsedRole, err := domain.RoleFromString(role)
	if err != nil {
		return domain.User{}, domain.ErrInvalidRole()
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if existing, _ := s.users.GetByEmail(ctx, email); existing != nil {
		return domain.User{}, domain.ErrUserAlreadyExists()
	}

	hashed, err := HashPassword(password)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.User{}, err
	}

	user := domain.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      parsedRole,
		CreatedAt: time.Now(),
	}

	return s.users.Insert(ctx, user)
}

func (s *AuthService) LogIn(ctx context.Context, email string, password string) (token string, err error) {
	ctx, span := s.tracer.Start(ctx, "Auth.LogIn")
	defer span.End()

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", domain.ErrInvalidCredentials()
	}

	if !CheckPasswordHash(password, user.Password) {
		return "", domain.ErrInvalidCredentials()
	}

	return s.CreateToken(*user)
}

func (s *AuthService) CreateToken(user domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"userId": user.Id.Hex(),
			"name":   user.Name,
			"email":  user.Email,
			"role":   user.Role.String(),
			"exp":    time.Now().Add(time.Hour * 24).Unix(),
			"jti":    uuid.NewString(),
		})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken resolves a bearer token into the caller's identity. This
// is the only place a credential is turned into (userId, role); nothing
// downstream reads ambient auth state.
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken()
		}
		return s.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken()
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken()
	}

	tokenClaims := &TokenClaims{}
	if userId, ok := (*claims)["userId"].(string); ok {
		tokenClaims.UserID = userId
	}
	if name, ok := (*claims)["name"].(string); ok {
		tokenClaims.Name = name
	}
	if email, ok := (*claims)["email"].(string); ok {
		tokenClaims.Email = email
	}
	if role, ok := (*claims)["role"].(string); ok {
		tokenClaims.Role = role
	}
	if exp, ok := (*claims)["exp"].(float64); ok {
		tokenClaims.Exp = int64(exp)
	}

	if tokenClaims.UserID == "" {
		return nil, domain.ErrInvalidToken()
	}

	return tokenClaims, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userId, oldPassword, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "Auth.ChangePassword")
	defer span.End()

	user, err := s.users.GetById(ctx, userId)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if !CheckPasswordHash(oldPassword, user.Password) {
		return domain.ErrInvalidCredentials()
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	_, err = s.users.Update(ctx, *user)
	return err
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
