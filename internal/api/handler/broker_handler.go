package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/api/metrics"
	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

type BrokerHandler struct {
	brokers ports.BrokerRepository
}

func NewBrokerHandler(brokers ports.BrokerRepository) *BrokerHandler {
	return &BrokerHandler{brokers: brokers}
}

type createBrokerRequest struct {
	Name           string  `json:"name" validate:"required"`
	Company        string  `json:"company"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Phone          string  `json:"phone"`
	Territory      string  `json:"territory"`
	CommissionRate float64 `json:"commission_rate" validate:"gte=0"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
}

type updateBrokerRequest struct {
	Name           *string  `json:"name"`
	Company        *string  `json:"company"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Phone          *string  `json:"phone"`
	Territory      *string  `json:"territory"`
	CommissionRate *float64 `json:"commission_rate" validate:"omitempty,gte=0"`
	Status         *string  `json:"status"`
	Notes          *string  `json:"notes"`
}

func (h *BrokerHandler) Create(c echo.Context) error {
	var req createBrokerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := req.Status
	if status == "" {
		status = "active"
	}
	broker := &domain.Broker{
		ID:             uuid.Must(uuid.NewV4()).String(),
		Name:           req.Name,
		Company:        req.Company,
		Email:          req.Email,
		Phone:          req.Phone,
		Territory:      req.Territory,
		CommissionRate: req.CommissionRate,
		Status:         status,
		Notes:          req.Notes,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.brokers.Create(c.Request().Context(), broker); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, broker)
}

func (h *BrokerHandler) List(c echo.Context) error {
	brokers, err := h.brokers.List(c.Request().Context(), ports.BrokerFilter{
		Status:    c.QueryParam("status"),
		Territory: c.QueryParam("territory"),
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brokers)
}

func (h *BrokerHandler) Get(c echo.Context) error {
	broker, err := h.brokers.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, broker)
}

func (h *BrokerHandler) Update(c echo.Context) error {
	var req updateBrokerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	broker, err := h.brokers.UpdateFields(c.Request().Context(), c.Param("id"), domain.BrokerPatch{
		Name:           req.Name,
		Company:        req.Company,
		Email:          req.Email,
		Phone:          req.Phone,
		Territory:      req.Territory,
		CommissionRate: req.CommissionRate,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, broker)
}

func (h *BrokerHandler) Delete(c echo.Context) error {
	if err := h.brokers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("brokers").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Broker deleted"})
}

// RecordSale credits a sale amount to the broker's running totals. The
// amount arrives as a query parameter.
func (h *BrokerHandler) RecordSale(c echo.Context) error {
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil || amount < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid amount")
	}

	broker, err := h.brokers.RecordSale(c.Request().Context(), c.Param("id"), amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, broker)
}
