package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sportshub/internal/model"
	"sportshub/internal/service"
)

// RegistrationHandler handles team registration endpoints.
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// RegistrationRequest represents a team registration body.
type RegistrationRequest struct {
	CollegeName      string `json:"college_name" validate:"required"`
	TeamName         string `json:"team_name" validate:"required"`
	Sport            string `json:"sport" validate:"required"`
	CaptainName      string `json:"captain_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	TeamSize         int    `json:"team_size" validate:"required,min=1"`
	AlternateContact string `json:"alternate_contact"`
}

// StatusUpdateRequest changes a registration's review status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// Create godoc
// @Summary Submit a team registration
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body RegistrationRequest true "Registration data"
// @Success 201 {object} model.Registration
// @Failure 400 {object} errors.ErrorResponse
// @Router /registrations [post]
func (h *RegistrationHandler) Create(c echo.Context) error {
	var req RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	registration := &model.Registration{
		CollegeName:      req.CollegeName,
		TeamName:         req.TeamName,
		Sport:            req.Sport,
		CaptainName:      req.CaptainName,
		Email:            req.Email,
		Phone:            req.Phone,
		TeamSize:         req.TeamSize,
		AlternateContact: req.AlternateContact,
	}

	if err := h.registrationService.Create(c.Request().Context(), registration); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, registration)
}

// List godoc
// @Summary List team registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Registration
// @Router /admin/registrations [get]
func (h *RegistrationHandler) List(c echo.Context) error {
	registrations, err := h.registrationService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, registrations)
}

// UpdateStatus godoc
// @Summary Approve or reject a registration
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body StatusUpdateRequest true "New status"
// @Success 200 {object} model.Registration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/registrations/{id}/status [patch]
func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid registration id")
	}

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	registration, err := h.registrationService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, registration)
}
