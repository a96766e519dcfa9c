package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loginapi/internal/cache"
	apperrors "loginapi/internal/errors"
	"loginapi/internal/metrics"
	"loginapi/internal/model"
	"loginapi/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// Cache is the subset of cache operations the service uses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Ensure the Redis client satisfies the service's cache seam.
var _ Cache = (*cache.Client)(nil)

// UserService exposes read and update operations on user records.
type UserService interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, email, password *string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache Cache
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache Cache) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// GetUser returns the record for id, reading through the cache.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, apperrors.ErrMissingUserID
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.UserLookupsTotal.WithLabelValues(metrics.LookupCacheHit).Inc()
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			metrics.UserLookupsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		} else {
			metrics.UserLookupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	metrics.UserLookupsTotal.WithLabelValues(metrics.LookupStoreHit).Inc()
	return user, nil
}

// UpdateUser overwrites the supplied fields. Email and password are
// independently optional; supplying neither returns the unchanged record.
func (s *userService) UpdateUser(ctx context.Context, id string, email, password *string) (*model.User, error) {
	if id == "" {
		return nil, apperrors.ErrMissingUserID
	}

	update := repository.UserUpdate{Email: email}
	if password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			metrics.UserUpdatesTotal.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, fmt.Errorf("hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	user, err := s.repo.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			metrics.UserUpdatesTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		case errors.Is(err, apperrors.ErrEmailInUse):
			metrics.UserUpdatesTotal.WithLabelValues(metrics.OutcomeConflict).Inc()
		default:
			metrics.UserUpdatesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return nil, err
	}

	// The cached projection is stale after any write.
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	metrics.UserUpdatesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return user, nil
}
