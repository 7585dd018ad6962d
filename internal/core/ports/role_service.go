package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

type CreateRoleInput struct {
	Name        string
	Description string
	Permissions []string
}

// RoleService guards role deletion: a role still held by team members is
// rejected with a count-bearing error.
type RoleService interface {
	Create(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Update(ctx context.Context, id string, patch domain.RolePatch) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
