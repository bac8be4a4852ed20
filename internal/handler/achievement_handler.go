package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sportshub/internal/model"
	"sportshub/internal/service"
)

// AchievementHandler handles achievement endpoints.
type AchievementHandler struct {
	achievementService service.AchievementService
}

// NewAchievementHandler creates a new achievement handler.
func NewAchievementHandler(achievementService service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// AchievementRequest represents an achievement create/update body.
type AchievementRequest struct {
	SportType       string `json:"sport_type" validate:"required"`
	ParticipantName string `json:"participant_name" validate:"required"`
	Position        string `json:"position" validate:"required"`
	Year            string `json:"year" validate:"required"`
	Category        string `json:"category" validate:"required,oneof=Gold Silver Bronze"`
	Classification  string `json:"classification" validate:"required,oneof=Group Individual"`
	Level           string `json:"level" validate:"required"`
}

func (r *AchievementRequest) toModel() *model.Achievement {
	return &model.Achievement{
		SportType:       r.SportType,
		ParticipantName: r.ParticipantName,
		Position:        r.Position,
		Year:            r.Year,
		Category:        r.Category,
		Classification:  r.Classification,
		Level:           r.Level,
	}
}

// List godoc
// @Summary List all achievements
// @Tags achievements
// @Produce json
// @Success 200 {array} model.Achievement
// @Router /achievements [get]
func (h *AchievementHandler) List(c echo.Context) error {
	achievements, err := h.achievementService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, achievements)
}

// Get godoc
// @Summary Get an achievement by id
// @Tags achievements
// @Produce json
// @Param id path string true "Achievement ID"
// @Success 200 {object} model.Achievement
// @Failure 404 {object} errors.ErrorResponse
// @Router /achievements/{id} [get]
func (h *AchievementHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid achievement id")
	}

	achievement, err := h.achievementService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, achievement)
}

// Create godoc
// @Summary Add an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AchievementRequest true "Achievement data"
// @Success 201 {object} model.Achievement
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/achievements [post]
func (h *AchievementHandler) Create(c echo.Context) error {
	var req AchievementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	achievement := req.toModel()
	if err := h.achievementService.Create(c.Request().Context(), achievement); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, achievement)
}

// Update godoc
// @Summary Update an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Achievement ID"
// @Param request body AchievementRequest true "Achievement data"
// @Success 200 {object} model.Achievement
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/achievements/{id} [put]
func (h *AchievementHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid achievement id")
	}

	var req AchievementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	achievement, err := h.achievementService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, achievement)
}

// Delete godoc
// @Summary Delete an achievement
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Achievement ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/achievements/{id} [delete]
func (h *AchievementHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid achievement id")
	}

	if err := h.achievementService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "achievement deleted successfully"})
}
