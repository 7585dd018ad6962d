package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders     map[string]*domain.Order
	lastTotals *ports.OrderTotals
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[string]*domain.Order{}}
}

func (s *stubOrderRepo) Create(_ context.Context, order *domain.Order) error {
	s.orders[order.ID] = order
	return nil
}

func (s *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.NotFound("Order")
	}
	return order, nil
}

func (s *stubOrderRepo) List(_ context.Context, _ ports.OrderFilter) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *stubOrderRepo) UpdateFields(_ context.Context, id string, patch domain.OrderPatch, totals *ports.OrderTotals) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.NotFound("Order")
	}
	s.lastTotals = totals
	if patch.LineItems != nil {
		order.LineItems = *patch.LineItems
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if totals != nil {
		order.Subtotal = totals.Subtotal
		order.TaxAmount = totals.TaxAmount
		order.Total = totals.Total
	}
	return order, nil
}

func (s *stubOrderRepo) Delete(_ context.Context, id string) error {
	delete(s.orders, id)
	return nil
}

type stubClientRepo struct {
	clients        map[string]*domain.Client
	recordedID     string
	recordedAmount float64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: map[string]*domain.Client{}}
}

func (s *stubClientRepo) Create(_ context.Context, client *domain.Client) error {
	s.clients[client.ID] = client
	return nil
}

func (s *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	client, ok := s.clients[id]
	if !ok {
		return nil, domain.NotFound("Client")
	}
	return client, nil
}

func (s *stubClientRepo) List(_ context.Context, _ ports.ClientFilter) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubClientRepo) UpdateFields(_ context.Context, id string, _ domain.ClientPatch) (*domain.Client, error) {
	return s.clients[id], nil
}

func (s *stubClientRepo) Delete(_ context.Context, id string) error {
	delete(s.clients, id)
	return nil
}

func (s *stubClientRepo) RecordOrder(_ context.Context, id string, amount float64, _ time.Time) error {
	s.recordedID = id
	s.recordedAmount = amount
	return nil
}

func (s *stubClientRepo) ListNotes(_ context.Context, _ string) ([]*domain.ClientNote, error) {
	return nil, nil
}

func (s *stubClientRepo) CreateNote(_ context.Context, _ *domain.ClientNote) error { return nil }

func (s *stubClientRepo) DeleteNote(_ context.Context, _, _ string) error { return nil }

type stubSettingsRepo struct {
	settings domain.Settings
}

func (s *stubSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	cfg := s.settings
	return &cfg, nil
}

func (s *stubSettingsRepo) Upsert(_ context.Context, _ domain.SettingsPatch) (*domain.Settings, error) {
	cfg := s.settings
	return &cfg, nil
}

func newOrderService(orders *stubOrderRepo, clients *stubClientRepo, settings *stubSettingsRepo) *OrderService {
	if settings == nil {
		settings = &stubSettingsRepo{settings: domain.DefaultSettings()}
	}
	return NewOrderService(orders, clients, settings, zerolog.Nop())
}

func TestOrderService_Create_PricesOrder(t *testing.T) {
	orders := newStubOrderRepo()
	clients := newStubClientRepo()
	svc := newOrderService(orders, clients, nil)

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		LineItems: []domain.LineItem{
			{ProductName: "Branded Pens", Quantity: 100, UnitPrice: 12.50},
			{ProductName: "Tote Bags", Quantity: 50, UnitPrice: 28.00},
			{ProductName: "Stickers", Quantity: 200, UnitPrice: 8.75},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.Subtotal != 4400.00 {
		t.Fatalf("expected subtotal 4400.00, got %v", order.Subtotal)
	}
	if order.TaxAmount != 374.00 {
		t.Fatalf("expected tax 374.00, got %v", order.TaxAmount)
	}
	if order.Total != 4774.00 {
		t.Fatalf("expected total 4774.00, got %v", order.Total)
	}
	if order.TaxRate != domain.DefaultTaxRatePercent {
		t.Fatalf("expected snapshotted tax rate %v, got %v", domain.DefaultTaxRatePercent, order.TaxRate)
	}
	if order.Status != domain.OrderStatusDraft {
		t.Fatalf("expected default status draft, got %q", order.Status)
	}
	if !strings.HasPrefix(order.OrderCode, "SOA-") || len(order.OrderCode) != 8 {
		t.Fatalf("unexpected order code %q", order.OrderCode)
	}
}

func TestOrderService_Create_UsesConfiguredTaxRate(t *testing.T) {
	orders := newStubOrderRepo()
	clients := newStubClientRepo()
	settings := &stubSettingsRepo{settings: domain.Settings{TaxRate: 10}}
	svc := newOrderService(orders, clients, settings)

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		LineItems: []domain.LineItem{{ProductName: "Mugs", Quantity: 10, UnitPrice: 10}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.TaxRate != 10 {
		t.Fatalf("expected tax rate 10, got %v", order.TaxRate)
	}
	if order.TaxAmount != 10.00 || order.Total != 110.00 {
		t.Fatalf("unexpected totals: tax %v total %v", order.TaxAmount, order.Total)
	}
}

func TestOrderService_Create_BumpsClientCounters(t *testing.T) {
	orders := newStubOrderRepo()
	clients := newStubClientRepo()
	clients.clients["c1"] = &domain.Client{ID: "c1", Name: "Acme Corp"}
	svc := newOrderService(orders, clients, nil)

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		ClientID:  "c1",
		LineItems: []domain.LineItem{{ProductName: "Caps", Quantity: 4, UnitPrice: 25}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if clients.recordedID != "c1" {
		t.Fatalf("expected counters bumped for c1, got %q", clients.recordedID)
	}
	if clients.recordedAmount != order.Total {
		t.Fatalf("expected recorded amount %v, got %v", order.Total, clients.recordedAmount)
	}
	if order.ClientName != "Acme Corp" {
		t.Fatalf("expected joined client name, got %q", order.ClientName)
	}
}

func TestOrderService_Create_DanglingClientReadsUnknown(t *testing.T) {
	orders := newStubOrderRepo()
	clients := newStubClientRepo()
	svc := newOrderService(orders, clients, nil)

	order := &domain.Order{ID: "o1", ClientID: "ghost"}
	orders.orders["o1"] = order

	got, err := svc.Get(context.Background(), "o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ClientName != "Unknown" {
		t.Fatalf("expected Unknown client name, got %q", got.ClientName)
	}
}

func TestOrderService_Update_EmptyPatch(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(), newStubClientRepo(), nil)

	_, err := svc.Update(context.Background(), "any", domain.OrderPatch{})
	if !errors.Is(err, domain.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestOrderService_Update_RecomputesWithStoredTaxRate(t *testing.T) {
	orders := newStubOrderRepo()
	clients := newStubClientRepo()
	// Settings now carry a different rate; the order keeps its snapshot.
	settings := &stubSettingsRepo{settings: domain.Settings{TaxRate: 20}}
	svc := newOrderService(orders, clients, settings)

	orders.orders["o1"] = &domain.Order{ID: "o1", TaxRate: 5}

	items := []domain.LineItem{{ProductName: "Lanyards", Quantity: 100, UnitPrice: 2}}
	order, err := svc.Update(context.Background(), "o1", domain.OrderPatch{LineItems: &items})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if orders.lastTotals == nil {
		t.Fatalf("expected recomputed totals to reach the repository")
	}
	if order.Subtotal != 200 || order.TaxAmount != 10 || order.Total != 210 {
		t.Fatalf("expected 200/10/210 at 5%%, got %v/%v/%v", order.Subtotal, order.TaxAmount, order.Total)
	}
}

func TestOrderService_Update_StatusOnlyKeepsTotals(t *testing.T) {
	orders := newStubOrderRepo()
	svc := newOrderService(orders, newStubClientRepo(), nil)

	orders.orders["o1"] = &domain.Order{ID: "o1", TaxRate: 8.5, Subtotal: 100, TaxAmount: 8.5, Total: 108.5}

	status := domain.OrderStatusShipped
	order, err := svc.Update(context.Background(), "o1", domain.OrderPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if orders.lastTotals != nil {
		t.Fatalf("expected no totals recomputation on a status-only patch")
	}
	if order.Total != 108.5 {
		t.Fatalf("expected total untouched, got %v", order.Total)
	}
}
