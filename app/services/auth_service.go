package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/pkg/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService registers users and verifies their credentials.
type AuthService struct {
	users repositories.UserStore
}

func NewAuthService(users repositories.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user and issues their session token. Field-level
// validation (presence, password length) happens at the HTTP boundary; this
// guards the invariant the store enforces too: one account per email.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, "", Conflict("User already exists with this email")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("register: hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("register: sign token: %w", err)
	}
	return user, token, nil
}

// Login verifies email and password. Unknown email and wrong password share
// one generic message so the endpoint can't be used for account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, password) {
		return nil, "", Unauthorized("Invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("login: sign token: %w", err)
	}
	return user, token, nil
}

// UserByID resolves a verified credential's subject to a live user record.
// Returns (nil, nil) when the user no longer exists.
func (s *AuthService) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
