package ports

import (
	"context"
	"time"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// DealFilter narrows pipeline listings. Search matches client name or
// product description.
type DealFilter struct {
	ClientID string
	Stage    string
	Priority string
	Search   string
	Limit    int64
}

type DealRepository interface {
	Create(ctx context.Context, deal *domain.Deal) error
	FindByID(ctx context.Context, id string) (*domain.Deal, error)
	List(ctx context.Context, filter DealFilter) ([]*domain.Deal, error)
	// UpdateFields applies the patch; closedAt, when non-nil, stamps
	// date_closed (set by the caller on transitions to won/lost).
	UpdateFields(ctx context.Context, id string, patch domain.DealPatch, closedAt *time.Time) (*domain.Deal, error)
	Delete(ctx context.Context, id string) error
}
