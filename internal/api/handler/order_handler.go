package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/api/metrics"
	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// OrderHandler serves order CRUD. Totals never come from the payload; the
// service derives them from the line items.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type lineItemRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type createOrderRequest struct {
	ClientID        string            `json:"client_id"`
	LineItems       []lineItemRequest `json:"line_items" validate:"dive"`
	Status          string            `json:"status"`
	ProgressPercent int               `json:"progress_percent" validate:"gte=0,lte=100"`
	DueDate         string            `json:"due_date"`
	Priority        string            `json:"priority"`
	Notes           string            `json:"notes"`
}

type updateOrderRequest struct {
	LineItems       *[]lineItemRequest `json:"line_items" validate:"omitempty,dive"`
	Status          *string            `json:"status"`
	ProgressPercent *int               `json:"progress_percent" validate:"omitempty,gte=0,lte=100"`
	DueDate         *string            `json:"due_date"`
	Priority        *string            `json:"priority"`
	Notes           *string            `json:"notes"`
}

func toLineItems(items []lineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.LineItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return out
}

// Create prices and stores a new order.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.Create(c.Request().Context(), ports.CreateOrderInput{
		ClientID:        req.ClientID,
		LineItems:       toLineItems(req.LineItems),
		Status:          req.Status,
		ProgressPercent: req.ProgressPercent,
		DueDate:         req.DueDate,
		Priority:        req.Priority,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// List returns orders, optionally narrowed by client, status, priority or a
// search over the order code and line-item product names.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context(), ports.OrderFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Update applies a partial update. Replacing line items recomputes the
// totals with the order's stored tax rate.
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := domain.OrderPatch{
		Status:          req.Status,
		ProgressPercent: req.ProgressPercent,
		DueDate:         req.DueDate,
		Priority:        req.Priority,
		Notes:           req.Notes,
	}
	if req.LineItems != nil {
		items := toLineItems(*req.LineItems)
		patch.LineItems = &items
	}

	order, err := h.orders.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orders.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("orders").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Order deleted"})
}
