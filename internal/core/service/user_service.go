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

// UserService implements the admin CRUD operations over user records.
// Writes invalidate the auth-gate cache entry so a deleted or demoted
// account stops authenticating as soon as the entry clears.
type UserService struct {
	repo  ports.UserRepository
	cache ports.UserCache
}

func NewUserService(repo ports.UserRepository, cache ports.UserCache) *UserService {
	return &UserService{repo: repo, cache: cache}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Update applies a partial update: empty fields keep their current value
// and the password is re-hashed only when one is supplied.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" && in.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
			return nil, domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		user.Email = in.Email
	}
	if in.Role != "" {
		if !in.Role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.Password != "" {
		hash, err := password.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// invalidate drops the cached auth-gate entry. Cache failures are
// advisory; the short TTL bounds any staleness.
func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, id)
	}
}
