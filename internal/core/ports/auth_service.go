package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// RegisterInput carries the signup payload.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Initials string
}

// AuthService handles registration, login and bearer-token verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken checks signature and expiry, then resolves the subject to a
	// live user record. Fails with domain.ErrTokenExpired, ErrTokenInvalid or
	// ErrUserNotFound; all three surface as 401 at the API boundary.
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}
