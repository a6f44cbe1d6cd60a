package ports

import (
	"context"

	"github.com/crewbase/user-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a staff account and returns it with a fresh token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns a token plus the account.
	// Unknown email and wrong password fail identically.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser fetches the account behind an authenticated request.
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
}
