package ports

import (
	"context"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new user account. Role defaults to domain.RoleUser
	// when empty. The returned user never carries the password hash in JSON.
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	// Unknown username and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
