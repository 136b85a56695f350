package ports

import (
	"context"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Insert stores a new user and assigns a fresh unique id. Returns
	// domain.ErrUserExists when the username (case-sensitive) is taken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
