package ports

import (
	"context"
	"time"

	"github.com/soaeast/crm-api/internal/core/domain"
)

type IntegrationFilter struct {
	IntegrationType string
	Status          string
}

type IntegrationRepository interface {
	Create(ctx context.Context, integration *domain.Integration) error
	FindByID(ctx context.Context, id string) (*domain.Integration, error)
	List(ctx context.Context, filter IntegrationFilter) ([]*domain.Integration, error)
	UpdateFields(ctx context.Context, id string, patch domain.IntegrationPatch) (*domain.Integration, error)
	Delete(ctx context.Context, id string) error
	// MarkTested flips status to active and stamps last_tested_at.
	MarkTested(ctx context.Context, id string, at time.Time) (*domain.Integration, error)
}
