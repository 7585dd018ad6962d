package ports

import (
	"context"
	"time"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// ClientFilter narrows client listings. Search matches name or email,
// case-insensitive substring.
type ClientFilter struct {
	Status   string
	Tier     string
	Industry string
	Search   string
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
	UpdateFields(ctx context.Context, id string, patch domain.ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	// RecordOrder bumps total_orders/total_revenue and stamps last_order_date
	// as a single atomic document update. Not transactional with the order
	// insert that triggers it.
	RecordOrder(ctx context.Context, id string, amount float64, at time.Time) error

	// Activity-log notes live under the owning client.
	ListNotes(ctx context.Context, clientID string) ([]*domain.ClientNote, error)
	CreateNote(ctx context.Context, note *domain.ClientNote) error
	DeleteNote(ctx context.Context, clientID, noteID string) error
}
