package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportshub/internal/auth"
	"sportshub/internal/service"
)

// SettingsHandler handles site settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsRequest represents a settings update. Omitted fields are unchanged.
type SettingsRequest struct {
	RegistrationEnabled *bool   `json:"registration_enabled"`
	GoogleCalendarID    *string `json:"google_calendar_id"`
}

// RegistrationStatusResponse is the public registration toggle view.
type RegistrationStatusResponse struct {
	RegistrationEnabled bool `json:"registration_enabled"`
}

// CalendarIDResponse is the public calendar id view.
type CalendarIDResponse struct {
	GoogleCalendarID string `json:"google_calendar_id"`
}

// Get godoc
// @Summary Get site settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Settings
// @Router /admin/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settingsService.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Update site settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SettingsRequest true "Changed fields"
// @Success 200 {object} model.Settings
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	update := service.SettingsUpdate{
		RegistrationEnabled: req.RegistrationEnabled,
		GoogleCalendarID:    req.GoogleCalendarID,
	}

	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	settings, err := h.settingsService.Update(c.Request().Context(), update, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// RegistrationStatus godoc
// @Summary Get whether team registration is open
// @Tags settings
// @Produce json
// @Success 200 {object} RegistrationStatusResponse
// @Router /settings/registration-status [get]
func (h *SettingsHandler) RegistrationStatus(c echo.Context) error {
	settings, err := h.settingsService.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, RegistrationStatusResponse{
		RegistrationEnabled: settings.RegistrationEnabled,
	})
}

// CalendarID godoc
// @Summary Get the public Google Calendar id
// @Tags settings
// @Produce json
// @Success 200 {object} CalendarIDResponse
// @Router /settings/calendar-id [get]
func (h *SettingsHandler) CalendarID(c echo.Context) error {
	settings, err := h.settingsService.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, CalendarIDResponse{
		GoogleCalendarID: settings.GoogleCalendarID,
	})
}
