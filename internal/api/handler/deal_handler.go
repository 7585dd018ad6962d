package handler

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/api/metrics"
	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// DealHandler serves the sales pipeline. Moving a deal into a closed stage
// stamps its close date.
type DealHandler struct {
	deals ports.DealRepository
}

func NewDealHandler(deals ports.DealRepository) *DealHandler {
	return &DealHandler{deals: deals}
}

type createDealRequest struct {
	ClientName         string   `json:"client_name" validate:"required"`
	ClientID           *string  `json:"client_id"`
	Amount             float64  `json:"amount" validate:"gte=0"`
	ProductDescription string   `json:"product_description"`
	Stage              string   `json:"stage" validate:"omitempty,oneof=prospecting proposal negotiation won lost"`
	Priority           string   `json:"priority"`
	Tags               []string `json:"tags"`
	OwnerInitials      string   `json:"owner_initials"`
	OwnerColor         string   `json:"owner_color"`
}

type updateDealRequest struct {
	ClientName         *string   `json:"client_name"`
	Amount             *float64  `json:"amount" validate:"omitempty,gte=0"`
	ProductDescription *string   `json:"product_description"`
	Stage              *string   `json:"stage" validate:"omitempty,oneof=prospecting proposal negotiation won lost"`
	Priority           *string   `json:"priority"`
	Tags               *[]string `json:"tags"`
	LossReason         *string   `json:"loss_reason"`
}

func (h *DealHandler) Create(c echo.Context) error {
	var req createDealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stage := req.Stage
	if stage == "" {
		stage = domain.StageProspecting
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	deal := &domain.Deal{
		ID:                 uuid.Must(uuid.NewV4()).String(),
		ClientName:         req.ClientName,
		ClientID:           req.ClientID,
		Amount:             req.Amount,
		ProductDescription: req.ProductDescription,
		Stage:              stage,
		Priority:           priority,
		Tags:               tags,
		OwnerInitials:      req.OwnerInitials,
		OwnerColor:         req.OwnerColor,
		DateEntered:        time.Now().UTC(),
	}
	if err := h.deals.Create(c.Request().Context(), deal); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) List(c echo.Context) error {
	deals, err := h.deals.List(c.Request().Context(), ports.DealFilter{
		ClientID: c.QueryParam("client_id"),
		Stage:    c.QueryParam("stage"),
		Priority: c.QueryParam("priority"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) Get(c echo.Context) error {
	deal, err := h.deals.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deal)
}

// Update applies a partial update. A stage change into won or lost stamps
// date_closed with the current time.
func (h *DealHandler) Update(c echo.Context) error {
	var req updateDealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var closedAt *time.Time
	if req.Stage != nil && domain.Closed(*req.Stage) {
		now := time.Now().UTC()
		closedAt = &now
	}

	deal, err := h.deals.UpdateFields(c.Request().Context(), c.Param("id"), domain.DealPatch{
		ClientName:         req.ClientName,
		Amount:             req.Amount,
		ProductDescription: req.ProductDescription,
		Stage:              req.Stage,
		Priority:           req.Priority,
		Tags:               req.Tags,
		LossReason:         req.LossReason,
	}, closedAt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) Delete(c echo.Context) error {
	if err := h.deals.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("deals").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Deal deleted"})
}
