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

type ChannelHandler struct {
	channels ports.ChannelRepository
}

func NewChannelHandler(channels ports.ChannelRepository) *ChannelHandler {
	return &ChannelHandler{channels: channels}
}

type createChannelRequest struct {
	Name           string  `json:"name" validate:"required"`
	ChannelType    string  `json:"channel_type"`
	Description    string  `json:"description"`
	ContactEmail   string  `json:"contact_email" validate:"omitempty,email"`
	CommissionRate float64 `json:"commission_rate" validate:"gte=0"`
	Status         string  `json:"status"`
}

type updateChannelRequest struct {
	Name           *string  `json:"name"`
	ChannelType    *string  `json:"channel_type"`
	Description    *string  `json:"description"`
	ContactEmail   *string  `json:"contact_email" validate:"omitempty,email"`
	CommissionRate *float64 `json:"commission_rate" validate:"omitempty,gte=0"`
	Status         *string  `json:"status"`
}

func (h *ChannelHandler) Create(c echo.Context) error {
	var req createChannelRequest
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
	channel := &domain.Channel{
		ID:             uuid.Must(uuid.NewV4()).String(),
		Name:           req.Name,
		ChannelType:    req.ChannelType,
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
		CommissionRate: req.CommissionRate,
		Status:         status,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.channels.Create(c.Request().Context(), channel); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channel)
}

func (h *ChannelHandler) List(c echo.Context) error {
	channels, err := h.channels.List(c.Request().Context(), ports.ChannelFilter{
		ChannelType: c.QueryParam("channel_type"),
		Status:      c.QueryParam("status"),
		Search:      c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channels)
}

func (h *ChannelHandler) Get(c echo.Context) error {
	channel, err := h.channels.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channel)
}

func (h *ChannelHandler) Update(c echo.Context) error {
	var req updateChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	channel, err := h.channels.UpdateFields(c.Request().Context(), c.Param("id"), domain.ChannelPatch{
		Name:           req.Name,
		ChannelType:    req.ChannelType,
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
		CommissionRate: req.CommissionRate,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channel)
}

func (h *ChannelHandler) Delete(c echo.Context) error {
	if err := h.channels.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("channels").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Channel deleted"})
}
