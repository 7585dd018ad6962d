package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

type ChannelFilter struct {
	ChannelType string
	Status      string
	Search      string
}

type ChannelRepository interface {
	Create(ctx context.Context, channel *domain.Channel) error
	FindByID(ctx context.Context, id string) (*domain.Channel, error)
	List(ctx context.Context, filter ChannelFilter) ([]*domain.Channel, error)
	UpdateFields(ctx context.Context, id string, patch domain.ChannelPatch) (*domain.Channel, error)
	Delete(ctx context.Context, id string) error
}
