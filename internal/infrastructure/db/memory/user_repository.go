// Package memory provides in-memory repository implementations used as the
// default demo backend. Each repository owns its records behind a mutex so a
// test or process can instantiate fully isolated stores.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  []*domain.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	stored.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	r.users = append(r.users, &stored)

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Count reports the number of stored users. Intended for tests.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
