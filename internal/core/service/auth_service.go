package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
	"github.com/atcnextgen/catalog-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher *BcryptHasher
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *BcryptHasher, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrCredentialsRequired
	}
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrCredentialsRequired
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Unknown username and wrong password must look identical to the
		// caller, otherwise the response difference enumerates usernames.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}
