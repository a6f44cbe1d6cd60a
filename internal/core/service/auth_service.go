package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crewbase/user-api/internal/core/domain"
	"github.com/crewbase/user-api/internal/core/ports"
	"github.com/crewbase/user-api/internal/pkg/password"
)

// AuthService implements registration, login and current-user lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new staff account. Role assignment is an admin
// concern; public registration never reads a role from the request.
func (s *AuthService) Register(ctx context.Context, name, email, plain string) (*domain.User, string, error) {
	if name == "" || email == "" || plain == "" {
		return nil, "", domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		Role:         domain.RoleStaff,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return created, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both return ErrInvalidCredentials so callers cannot tell which
// check failed.
func (s *AuthService) Login(ctx context.Context, email, plain string) (string, *domain.User, error) {
	if email == "" || plain == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(plain, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
