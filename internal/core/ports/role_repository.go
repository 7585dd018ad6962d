package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	UpdateFields(ctx context.Context, id string, patch domain.RolePatch) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
