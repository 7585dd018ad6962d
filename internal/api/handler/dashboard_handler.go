package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats returns the headline KPI block.
//
// @Summary      Dashboard KPIs
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Pipeline(c echo.Context) error {
	summary, err := h.dashboard.PipelineSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) SalesTrend(c echo.Context) error {
	trend, err := h.dashboard.SalesTrend(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trend)
}

func (h *DashboardHandler) RecentDeals(c echo.Context) error {
	deals, err := h.dashboard.RecentDeals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deals)
}
