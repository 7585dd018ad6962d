package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// UserFilter narrows team-member listings.
type UserFilter struct {
	Role   string
	Status string
	Search string
}

// UserRepository persists user records for both auth and the team directory.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	UpdateFields(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// CountByRole reports how many users currently hold the named role.
	CountByRole(ctx context.Context, role string) (int64, error)
}
