package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sportshub/internal/auth"
	"sportshub/internal/model"
	"sportshub/internal/service"
)

// ScheduleHandler handles schedule endpoints.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ScheduleItemRequest is one timetable entry.
type ScheduleItemRequest struct {
	Time  string `json:"time" validate:"required"`
	Event string `json:"event" validate:"required"`
	Venue string `json:"venue" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=sport ceremony cultural"`
}

// ScheduleDayRequest groups items for one day.
type ScheduleDayRequest struct {
	DayName string                `json:"day_name" validate:"required"`
	Items   []ScheduleItemRequest `json:"items" validate:"dive"`
}

// ScheduleRequest represents a schedule create/update body.
type ScheduleRequest struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	EventID     *uuid.UUID           `json:"event_id"`
	Days        []ScheduleDayRequest `json:"days" validate:"dive"`
}

func (r *ScheduleRequest) toModel() *model.Schedule {
	days := make(model.ScheduleDays, 0, len(r.Days))
	for _, d := range r.Days {
		items := make([]model.ScheduleItem, 0, len(d.Items))
		for _, it := range d.Items {
			items = append(items, model.ScheduleItem{
				Time:  it.Time,
				Event: it.Event,
				Venue: it.Venue,
				Type:  it.Type,
			})
		}
		days = append(days, model.ScheduleDay{DayName: d.DayName, Items: items})
	}
	return &model.Schedule{
		Title:       r.Title,
		Description: r.Description,
		EventID:     r.EventID,
		Days:        days,
	}
}

// List godoc
// @Summary List all schedules
// @Tags schedules
// @Produce json
// @Success 200 {array} model.Schedule
// @Router /schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	schedules, err := h.scheduleService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, schedules)
}

// Get godoc
// @Summary Get a schedule by id
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} model.Schedule
// @Failure 404 {object} errors.ErrorResponse
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	schedule, err := h.scheduleService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

// GetByEvent godoc
// @Summary Get the schedule for an event
// @Tags schedules
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} model.Schedule
// @Failure 404 {object} errors.ErrorResponse
// @Router /schedules/event/{eventId} [get]
func (h *ScheduleHandler) GetByEvent(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	schedule, err := h.scheduleService.GetByEvent(c.Request().Context(), eventID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

// Create godoc
// @Summary Create a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScheduleRequest true "Schedule data"
// @Success 201 {object} model.Schedule
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule := req.toModel()
	if claims, err := auth.ClaimsFromContext(c); err == nil {
		schedule.CreatedBy = claims.UserID
	}

	if err := h.scheduleService.Create(c.Request().Context(), schedule); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, schedule)
}

// Update godoc
// @Summary Update a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body ScheduleRequest true "Schedule data"
// @Success 200 {object} model.Schedule
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/schedules/{id} [put]
func (h *ScheduleHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := h.scheduleService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

// Delete godoc
// @Summary Delete a schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	if err := h.scheduleService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "schedule deleted successfully"})
}
