package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/ports"
)

// ExportHandler dumps a whole collection as JSON for offline use. Filters
// do not apply here; exports are always complete.
type ExportHandler struct {
	clients  ports.ClientRepository
	products ports.ProductRepository
	orders   ports.OrderService
	deals    ports.DealRepository
	brokers  ports.BrokerRepository
	channels ports.ChannelRepository
}

func NewExportHandler(
	clients ports.ClientRepository,
	products ports.ProductRepository,
	orders ports.OrderService,
	deals ports.DealRepository,
	brokers ports.BrokerRepository,
	channels ports.ChannelRepository,
) *ExportHandler {
	return &ExportHandler{
		clients:  clients,
		products: products,
		orders:   orders,
		deals:    deals,
		brokers:  brokers,
		channels: channels,
	}
}

type exportResponse struct {
	Data  any    `json:"data"`
	Count int    `json:"count"`
	Type  string `json:"type"`
}

// Export returns every record of the requested entity type.
//
// @Summary      Export a collection
// @Tags         export
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      string  true  "clients|products|orders|deals|brokers|channels"
// @Success      200   {object}  exportResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/export/{type} [get]
func (h *ExportHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()
	exportType := c.Param("type")

	var (
		data  any
		count int
		err   error
	)
	switch exportType {
	case "clients":
		records, e := h.clients.List(ctx, ports.ClientFilter{})
		data, count, err = records, len(records), e
	case "products":
		records, e := h.products.List(ctx, ports.ProductFilter{})
		data, count, err = records, len(records), e
	case "orders":
		records, e := h.orders.List(ctx, ports.OrderFilter{})
		data, count, err = records, len(records), e
	case "deals":
		records, e := h.deals.List(ctx, ports.DealFilter{})
		data, count, err = records, len(records), e
	case "brokers":
		records, e := h.brokers.List(ctx, ports.BrokerFilter{})
		data, count, err = records, len(records), e
	case "channels":
		records, e := h.channels.List(ctx, ports.ChannelFilter{})
		data, count, err = records, len(records), e
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown export type: "+exportType)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, exportResponse{Data: data, Count: count, Type: exportType})
}
