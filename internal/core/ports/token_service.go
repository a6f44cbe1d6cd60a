package ports

import "github.com/crewbase/user-api/internal/core/domain"

// TokenClaims is the credential payload carried inside a signed token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   domain.Role
}

// TokenService issues and verifies signed, expiring credential tokens.
type TokenService interface {
	// Issue produces a self-contained signed token for the given user.
	Issue(user *domain.User) (string, error)
	// Verify validates the signature and expiry of a raw token and
	// returns its claims. Fails with domain.ErrExpiredToken when the
	// expiry has passed and domain.ErrInvalidToken for everything else
	// (bad signature, malformed payload, unknown role).
	Verify(raw string) (*TokenClaims, error)
}
