package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "sportshub/docs" // swagger docs

	"sportshub/internal/auth"
	"sportshub/internal/cache"
	"sportshub/internal/config"
	"sportshub/internal/db"
	"sportshub/internal/handler"
	"sportshub/internal/mailer"
	"sportshub/internal/model"
	"sportshub/internal/repository"
	"sportshub/internal/router"
	"sportshub/internal/service"
)

// @title Sports Hub API
// @version 1.0
// @description Sports department portal API: events, achievements, gallery, registrations, schedules, contacts and settings, with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.PasswordReset{},
		&model.Event{},
		&model.Achievement{},
		&model.GalleryImage{},
		&model.Registration{},
		&model.Schedule{},
		&model.Contact{},
		&model.Settings{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	resetRepo := repository.NewPasswordResetRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	achievementRepo := repository.NewAchievementRepository(gormDB)
	galleryRepo := repository.NewGalleryRepository(gormDB)
	registrationRepo := repository.NewRegistrationRepository(gormDB)
	scheduleRepo := repository.NewScheduleRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	smtpMailer := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	// Initialize services
	authService := service.NewAuthService(userRepo, resetRepo, jwtService, smtpMailer)
	eventService := service.NewEventService(eventRepo)
	achievementService := service.NewAchievementService(achievementRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	registrationService := service.NewRegistrationService(registrationRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	contactService := service.NewContactService(contactRepo)
	settingsService := service.NewSettingsService(settingsRepo, cacheClient)
	statsService := service.NewStatsService(eventRepo, achievementRepo, galleryRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	achievementHandler := handler.NewAchievementHandler(achievementService)
	galleryHandler := handler.NewGalleryHandler(galleryService, cfg.UploadDir)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	contactHandler := handler.NewContactHandler(contactService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		eventHandler,
		achievementHandler,
		galleryHandler,
		registrationHandler,
		scheduleHandler,
		contactHandler,
		settingsHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
