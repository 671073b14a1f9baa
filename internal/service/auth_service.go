package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"secureapp/internal/auth"
	"secureapp/internal/cache"
	apperrors "secureapp/internal/errors"
	"secureapp/internal/model"
	"secureapp/internal/repository"
)

var (
	// ErrEmailTaken is returned when the email already has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Lookup and verification failures share it so callers cannot tell
	// which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, cache *cache.Client) AuthService {
	return &authService{users: users, cache: cache}
}

// NormalizeEmail lowercases and trims an address. All store lookups and
// writes use the normalized form, making uniqueness case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a hashed password and role "user".
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check above only saves hashing work in the common
		// case; concurrent registrations race past it and are stopped
		// by the unique index instead.
		if apperrors.IsDuplicateEntry(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, recentUsersCacheKey)

	return user, nil
}

// Login verifies credentials and returns the stored user on success.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
