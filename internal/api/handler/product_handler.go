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

type ProductHandler struct {
	products ports.ProductRepository
}

func NewProductHandler(products ports.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price" validate:"gte=0"`
	Badge         *string `json:"badge"`
	MarginPercent float64 `json:"margin_percent" validate:"gte=0"`
	ImageURL      *string `json:"image_url"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Description   *string  `json:"description"`
	BasePrice     *float64 `json:"base_price" validate:"omitempty,gte=0"`
	Badge         *string  `json:"badge"`
	MarginPercent *float64 `json:"margin_percent" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product := &domain.Product{
		ID:            uuid.Must(uuid.NewV4()).String(),
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		Badge:         req.Badge,
		MarginPercent: req.MarginPercent,
		ImageURL:      req.ImageURL,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.products.Create(c.Request().Context(), product); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), ports.ProductFilter{
		Category: c.QueryParam("category"),
		Badge:    c.QueryParam("badge"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.UpdateFields(c.Request().Context(), c.Param("id"), domain.ProductPatch{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		Badge:         req.Badge,
		MarginPercent: req.MarginPercent,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("products").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted"})
}
