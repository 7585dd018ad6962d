package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// OrderFilter narrows order listings. Search matches the order code or the
// line-item product names.
type OrderFilter struct {
	ClientID string
	Status   string
	Priority string
	Search   string
}

// OrderTotals carries recomputed derived fields alongside a patch whenever
// line items are replaced.
type OrderTotals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	// UpdateFields applies the patch; when totals is non-nil the derived
	// subtotal/tax_amount/total fields are written in the same update.
	UpdateFields(ctx context.Context, id string, patch domain.OrderPatch, totals *OrderTotals) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
