package user

import (
	"context"
	"strings"
	"time"

	userRepo "meditrip/database/repository/user"
	"meditrip/models"
	"meditrip/services/booking"
	"meditrip/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// AuthResult is a successful sign-in or sign-up.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService handles account creation and sign-in.
type UserService interface {
	SignUp(ctx context.Context, email, password, name string) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (s *DefaultUserService) SignUp(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, booking.NewValidationError("Email and password are required")
	}
	if len(password) < 8 {
		return nil, booking.NewValidationError("Password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, booking.NewValidationError("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         "patient",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", zap.String("userId", u.ID))
	return &AuthResult{Token: token, User: u}, nil
}

func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, booking.NewValidationError("Email and password are required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, booking.NewAuthorizationError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, booking.NewAuthorizationError("Invalid email or password")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, booking.NewNotFoundError("User not found")
	}
	return u, nil
}
