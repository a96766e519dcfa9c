package repository

import (
	"context"
	"sync"
	"time"

	apperrors "loginapi/internal/errors"
	"loginapi/internal/model"
)

// UserUpdate carries the optional fields of an update. A nil field is left
// untouched; supplying neither field is a valid no-op.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
}

// UserRepository defines persistence operations on the identity collection.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*model.User, error)
}

// MemoryUserRepository is the in-memory identity store. Records live for the
// process lifetime and are indexed twice: by id and by email. Both indexes
// are mutated under one mutex so check-then-write sequences are atomic and
// duplicate emails cannot race in under parallel handlers.
type MemoryUserRepository struct {
	mu      sync.Mutex
	byID    map[string]*model.User
	byEmail map[string]string // email -> id
}

// NewMemoryUserRepository builds an empty in-memory store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

var _ UserRepository = (*MemoryUserRepository)(nil)

// Create appends a record, enforcing email uniqueness. Emails are compared
// byte-exact; no normalization.
func (r *MemoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return apperrors.ErrUserAlreadyExists
	}

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
	return nil
}

// FindByID returns the record with the given id, or ErrUserNotFound. An
// empty id never matches; the store checks equality only, not id shape.
func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// FindByEmail returns the record with the given email, or ErrUserNotFound.
func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	found := *r.byID[id]
	return &found, nil
}

// Update overwrites the supplied fields in place. The conflict check and the
// writes happen under the same lock, so a failed update leaves the record
// untouched. A record keeping its own current email is not a conflict.
func (r *MemoryUserRepository) Update(ctx context.Context, id string, update UserUpdate) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	if update.Email != nil && *update.Email != user.Email {
		if _, taken := r.byEmail[*update.Email]; taken {
			return nil, apperrors.ErrEmailInUse
		}
		delete(r.byEmail, user.Email)
		user.Email = *update.Email
		r.byEmail[user.Email] = id
		user.UpdatedAt = time.Now()
	}

	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
		user.UpdatedAt = time.Now()
	}

	updated := *user
	return &updated, nil
}
