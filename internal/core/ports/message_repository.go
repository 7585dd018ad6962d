package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// MessageFilter narrows inbox listings. IsRead is tri-state: nil means both.
type MessageFilter struct {
	IsRead *bool
	Search string
}

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	List(ctx context.Context, filter MessageFilter) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
