package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// ProductFilter narrows catalog listings. Search matches name or description.
type ProductFilter struct {
	Category string
	Badge    string
	Search   string
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	UpdateFields(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
