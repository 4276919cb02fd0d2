package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tradeacademy/internal/domain"
)

// UserRepositoryImpl implements the UserRepository interface in memory
type UserRepositoryImpl struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]domain.User
	defaultID uuid.UUID
	seed      func() domain.User
}

// NewUserRepository creates a new UserRepository seeded with the given user
func NewUserRepository(seed func() domain.User) domain.UserRepository {
	r := &UserRepositoryImpl{seed: seed}
	r.load()
	return r
}

func (r *UserRepositoryImpl) load() {
	user := r.seed()
	r.users = map[uuid.UUID]domain.User{user.ID: user}
	r.defaultID = user.ID
}

// GetByID retrieves a user by ID
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, domain.ErrUserNotFound)
	}

	clone := user.Clone()
	return &clone, nil
}

// GetDefault retrieves the seeded user
func (r *UserRepositoryImpl) GetDefault(ctx context.Context) (*domain.User, error) {
	r.mu.RLock()
	id := r.defaultID
	r.mu.RUnlock()

	return r.GetByID(ctx, id)
}

// Replace stores the given user in place of the existing record
func (r *UserRepositoryImpl) Replace(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("failed to replace user %s: %w", user.ID, domain.ErrUserNotFound)
	}

	r.users[user.ID] = user.Clone()
	return nil
}

// Reset restores the seed data
func (r *UserRepositoryImpl) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.load()
	return nil
}
