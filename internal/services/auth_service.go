package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

type Claims struct {
	Role constants.Role `json:"role"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     constants.Role
	City     string
}

// AuthService is the identity collaborator: it issues and verifies the
// tokens from which handlers resolve the caller's id and role.
type AuthService struct {
	users    *repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, "", apperrors.ErrMissingFields
	}

	switch input.Role {
	case constants.RoleCustomer, constants.RoleProvider:
	default:
		return nil, "", apperrors.ErrMissingFields
	}

	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         input.Role,
		City:         input.City,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    "servicehub",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
