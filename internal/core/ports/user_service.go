package ports

import (
	"context"

	"github.com/crewbase/user-api/internal/core/domain"
)

// CreateUserInput carries the fields for an admin-created account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput carries a partial update. Empty fields are left
// unchanged; a non-empty Password triggers a re-hash.
type UpdateUserInput struct {
	Name     string
	Email    string
	Role     domain.Role
	Password string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
