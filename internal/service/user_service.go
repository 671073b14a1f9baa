package service

import (
	"context"
	"encoding/json"
	"time"

	"secureapp/internal/cache"
	"secureapp/internal/model"
	"secureapp/internal/repository"
)

const (
	recentUsersCacheKey = "users:recent"
	recentUsersCacheTTL = 5 * time.Minute
)

// UserService exposes user listing for the admin surface.
type UserService interface {
	ListRecent(ctx context.Context, limit int) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// ListRecent returns the most recently created users, newest first. The
// result is cached briefly; registration invalidates the cache.
func (s *userService) ListRecent(ctx context.Context, limit int) ([]model.User, error) {
	if data, _ := s.cache.Get(ctx, recentUsersCacheKey); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(users); err == nil {
		_ = s.cache.Set(ctx, recentUsersCacheKey, payload, recentUsersCacheTTL)
	}
	return users, nil
}
