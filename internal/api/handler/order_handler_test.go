package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

type stubOrderService struct {
	createFn func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error)
	updateFn func(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	getFn    func(ctx context.Context, id string) (*domain.Order, error)
}

func (s *stubOrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, input)
}

func (s *stubOrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) List(context.Context, ports.OrderFilter) ([]*domain.Order, error) {
	return nil, nil
}

func (s *stubOrderService) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubOrderService) Delete(context.Context, string) error { return nil }

func TestOrderHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		createFn: func(_ context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
			if len(input.LineItems) != 2 {
				t.Fatalf("expected 2 line items, got %d", len(input.LineItems))
			}
			if input.LineItems[0].ProductName != "Branded Pens" || input.LineItems[0].Quantity != 100 {
				t.Fatalf("unexpected first item: %+v", input.LineItems[0])
			}
			return &domain.Order{ID: "o1", OrderCode: "SOA-1234", Subtotal: 1530, TaxAmount: 130.05, Total: 1660.05}, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{
		"client_id": "c1",
		"line_items": [
			{"product_name": "Branded Pens", "quantity": 100, "unit_price": 12.50},
			{"product_name": "Tote Bags", "quantity": 10, "unit_price": 28.00}
		]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["order_id"] != "SOA-1234" {
		t.Fatalf("expected order_id SOA-1234, got %v", resp["order_id"])
	}
}

func TestOrderHandler_Create_RejectsNonPositiveQuantity(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		createFn: func(context.Context, ports.CreateOrderInput) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"line_items": [{"product_name": "Pens", "quantity": 0, "unit_price": 1.00}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestOrderHandler_Create_RejectsNegativePrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		createFn: func(context.Context, ports.CreateOrderInput) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"line_items": [{"product_name": "Pens", "quantity": 5, "unit_price": -1.00}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestOrderHandler_Update_BuildsPatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		updateFn: func(_ context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
			if id != "o1" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Status == nil || *patch.Status != "shipped" {
				t.Fatalf("expected status patch, got %+v", patch)
			}
			if patch.LineItems != nil {
				t.Fatalf("line items should not be patched")
			}
			return &domain.Order{ID: id, Status: "shipped"}, nil
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/o1", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		getFn: func(context.Context, string) (*domain.Order, error) {
			return nil, domain.NotFound("Order")
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Get(c)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
