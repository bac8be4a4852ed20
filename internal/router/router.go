package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sportshub/internal/auth"
	"sportshub/internal/config"
	"sportshub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	achievementHandler *handler.AchievementHandler,
	galleryHandler *handler.GalleryHandler,
	registrationHandler *handler.RegistrationHandler,
	scheduleHandler *handler.ScheduleHandler,
	contactHandler *handler.ContactHandler,
	settingsHandler *handler.SettingsHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/verify-otp", authHandler.VerifyOTP)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	// Public reads and form submissions
	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)
	api.GET("/achievements", achievementHandler.List)
	api.GET("/achievements/:id", achievementHandler.Get)
	api.GET("/gallery", galleryHandler.List)
	api.GET("/schedules", scheduleHandler.List)
	api.GET("/schedules/:id", scheduleHandler.Get)
	api.GET("/schedules/event/:eventId", scheduleHandler.GetByEvent)
	api.POST("/registrations", registrationHandler.Create)
	api.POST("/contacts", contactHandler.Create)
	api.GET("/settings/registration-status", settingsHandler.RegistrationStatus)
	api.GET("/settings/calendar-id", settingsHandler.CalendarID)

	// Admin routes (bearer token with admin role)
	admin := api.Group("/admin", auth.AdminOnly(cfg.JWTSecret, cfg.AuthBypass)...)

	admin.POST("/events", eventHandler.Create)
	admin.PUT("/events/:id", eventHandler.Update)
	admin.DELETE("/events/:id", eventHandler.Delete)

	admin.POST("/achievements", achievementHandler.Create)
	admin.PUT("/achievements/:id", achievementHandler.Update)
	admin.DELETE("/achievements/:id", achievementHandler.Delete)

	admin.POST("/gallery", galleryHandler.Upload)
	admin.DELETE("/gallery/:id", galleryHandler.Delete)

	admin.GET("/registrations", registrationHandler.List)
	admin.PATCH("/registrations/:id/status", registrationHandler.UpdateStatus)

	admin.POST("/schedules", scheduleHandler.Create)
	admin.PUT("/schedules/:id", scheduleHandler.Update)
	admin.DELETE("/schedules/:id", scheduleHandler.Delete)

	admin.GET("/contacts", contactHandler.List)
	admin.PATCH("/contacts/:id/read", contactHandler.MarkRead)
	admin.DELETE("/contacts/:id", contactHandler.Delete)

	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Update)

	admin.GET("/stats", statsHandler.Dashboard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
