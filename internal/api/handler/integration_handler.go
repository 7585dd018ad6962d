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

// IntegrationHandler manages third-party hookups. API keys are accepted on
// input but never serialized back out.
type IntegrationHandler struct {
	integrations ports.IntegrationRepository
}

func NewIntegrationHandler(integrations ports.IntegrationRepository) *IntegrationHandler {
	return &IntegrationHandler{integrations: integrations}
}

type createIntegrationRequest struct {
	Name            string            `json:"name" validate:"required"`
	IntegrationType string            `json:"integration_type"`
	Provider        string            `json:"provider"`
	APIKey          string            `json:"api_key"`
	WebhookURL      string            `json:"webhook_url"`
	Settings        map[string]string `json:"settings"`
	Status          string            `json:"status"`
}

type updateIntegrationRequest struct {
	Name       *string            `json:"name"`
	Provider   *string            `json:"provider"`
	APIKey     *string            `json:"api_key"`
	WebhookURL *string            `json:"webhook_url"`
	Settings   *map[string]string `json:"settings"`
	Status     *string            `json:"status"`
}

type testIntegrationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *IntegrationHandler) Create(c echo.Context) error {
	var req createIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := req.Status
	if status == "" {
		status = "inactive"
	}
	settings := req.Settings
	if settings == nil {
		settings = map[string]string{}
	}
	integration := &domain.Integration{
		ID:              uuid.Must(uuid.NewV4()).String(),
		Name:            req.Name,
		IntegrationType: req.IntegrationType,
		Provider:        req.Provider,
		APIKey:          req.APIKey,
		WebhookURL:      req.WebhookURL,
		Settings:        settings,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.integrations.Create(c.Request().Context(), integration); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, integration)
}

func (h *IntegrationHandler) List(c echo.Context) error {
	integrations, err := h.integrations.List(c.Request().Context(), ports.IntegrationFilter{
		IntegrationType: c.QueryParam("integration_type"),
		Status:          c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, integrations)
}

func (h *IntegrationHandler) Get(c echo.Context) error {
	integration, err := h.integrations.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, integration)
}

func (h *IntegrationHandler) Update(c echo.Context) error {
	var req updateIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	integration, err := h.integrations.UpdateFields(c.Request().Context(), c.Param("id"), domain.IntegrationPatch{
		Name:       req.Name,
		Provider:   req.Provider,
		APIKey:     req.APIKey,
		WebhookURL: req.WebhookURL,
		Settings:   req.Settings,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, integration)
}

func (h *IntegrationHandler) Delete(c echo.Context) error {
	if err := h.integrations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("integrations").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Integration deleted"})
}

// Test marks the integration as tested. No outbound call is made; the
// endpoint records the check and activates the integration.
func (h *IntegrationHandler) Test(c echo.Context) error {
	integration, err := h.integrations.MarkTested(c.Request().Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testIntegrationResponse{
		Success: true,
		Message: "Connection to " + integration.Name + " successful",
	})
}
