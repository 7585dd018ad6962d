package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// BrokerFilter narrows broker listings. Search matches name, company or email.
type BrokerFilter struct {
	Status    string
	Territory string
	Search    string
}

type BrokerRepository interface {
	Create(ctx context.Context, broker *domain.Broker) error
	FindByID(ctx context.Context, id string) (*domain.Broker, error)
	List(ctx context.Context, filter BrokerFilter) ([]*domain.Broker, error)
	UpdateFields(ctx context.Context, id string, patch domain.BrokerPatch) (*domain.Broker, error)
	Delete(ctx context.Context, id string) error
	// RecordSale atomically adds amount to total_sales and increments
	// total_deals, returning the updated broker.
	RecordSale(ctx context.Context, id string, amount float64) (*domain.Broker, error)
}
