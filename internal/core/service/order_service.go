package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/soaeast/crm-api/internal/api/metrics"
	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// OrderService prices and persists orders. Derived totals are always
// computed here from the line items; client-supplied totals are ignored.
type OrderService struct {
	orders   ports.OrderRepository
	clients  ports.ClientRepository
	settings ports.SettingsRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, clients ports.ClientRepository, settings ports.SettingsRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, clients: clients, settings: settings, logger: logger}
}

// Create prices the order with the tax rate effective right now and stores
// that rate on the order, so later settings changes never reprice it. The
// owning client's counters are bumped afterwards; the two writes are not
// transactional (a crash in between leaves the counter behind by one).
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	taxRate := cfg.TaxRate
	if taxRate == 0 {
		taxRate = domain.DefaultTaxRatePercent
	}

	subtotal, taxAmount, total := domain.ComputeTotals(input.LineItems, taxRate)

	now := time.Now().UTC()
	status := input.Status
	if status == "" {
		status = domain.OrderStatusDraft
	}
	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	order := &domain.Order{
		ID:              uuid.Must(uuid.NewV4()).String(),
		OrderCode:       generateOrderCode(),
		ClientID:        input.ClientID,
		LineItems:       input.LineItems,
		Subtotal:        subtotal,
		TaxRate:         taxRate,
		TaxAmount:       taxAmount,
		Total:           total,
		Status:          status,
		ProgressPercent: input.ProgressPercent,
		DueDate:         input.DueDate,
		Priority:        priority,
		Notes:           input.Notes,
		CreatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	if input.ClientID != "" {
		if err := s.clients.RecordOrder(ctx, input.ClientID, total, now); err != nil {
			return nil, err
		}
	}

	metrics.OrdersCreatedTotal.WithLabelValues(status).Inc()
	s.logger.Info().
		Str("order_code", order.OrderCode).
		Str("client_id", order.ClientID).
		Float64("total", order.Total).
		Msg("order created")

	s.attachClientName(ctx, order)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachClientName(ctx, order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter ports.OrderFilter) ([]*domain.Order, error) {
	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		s.attachClientName(ctx, order)
	}
	return orders, nil
}

// Update applies a partial update. When line items are replaced the totals
// are recomputed with the order's stored tax rate, not the current settings.
func (s *OrderService) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var totals *ports.OrderTotals
	if patch.LineItems != nil {
		existing, err := s.orders.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		subtotal, taxAmount, total := domain.ComputeTotals(*patch.LineItems, existing.TaxRate)
		totals = &ports.OrderTotals{Subtotal: subtotal, TaxAmount: taxAmount, Total: total}
	}

	order, err := s.orders.UpdateFields(ctx, id, patch, totals)
	if err != nil {
		return nil, err
	}
	s.attachClientName(ctx, order)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// attachClientName joins the owning client's display name onto the order.
// A dangling client reference reads as "Unknown", mirroring list views.
func (s *OrderService) attachClientName(ctx context.Context, order *domain.Order) {
	if order.ClientID == "" {
		return
	}
	client, err := s.clients.FindByID(ctx, order.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			order.ClientName = "Unknown"
		}
		return
	}
	order.ClientName = client.Name
}

// generateOrderCode returns a human-readable code in the format SOA-NNNN.
func generateOrderCode() string {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("SOA-%04d", time.Now().UnixNano()%9000+1000)
	}
	n := binary.BigEndian.Uint16(b[:])
	return fmt.Sprintf("SOA-%04d", int(n)%9000+1000)
}
