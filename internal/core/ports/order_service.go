package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// CreateOrderInput carries everything needed to price and persist an order.
// Derived totals are never part of the input: the service computes them from
// the line items and the tax rate effective at creation time.
type CreateOrderInput struct {
	ClientID        string
	LineItems       []domain.LineItem
	Status          string
	ProgressPercent int
	DueDate         string
	Priority        string
	Notes           string
}

type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
