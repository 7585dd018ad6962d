package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// SettingsHandler serves the single company-wide settings document.
type SettingsHandler struct {
	settings ports.SettingsRepository
}

func NewSettingsHandler(settings ports.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type updateSettingsRequest struct {
	CompanyName   *string                      `json:"company_name"`
	CompanyEmail  *string                      `json:"company_email" validate:"omitempty,email"`
	Industry      *string                      `json:"industry"`
	Currency      *string                      `json:"currency"`
	TaxRate       *float64                     `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	Timezone      *string                      `json:"timezone"`
	DateFormat    *string                      `json:"date_format"`
	EmailSettings *domain.EmailSettings        `json:"email_settings"`
	Notifications *domain.NotificationSettings `json:"notifications"`
}

func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update merges the supplied fields into the stored settings. A new tax
// rate only affects orders priced after the change.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := domain.SettingsPatch{
		CompanyName:   req.CompanyName,
		CompanyEmail:  req.CompanyEmail,
		Industry:      req.Industry,
		Currency:      req.Currency,
		TaxRate:       req.TaxRate,
		Timezone:      req.Timezone,
		DateFormat:    req.DateFormat,
		EmailSettings: req.EmailSettings,
		Notifications: req.Notifications,
	}
	if patch.IsEmpty() {
		return domain.ErrNoFieldsToUpdate
	}

	settings, err := h.settings.Upsert(c.Request().Context(), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
