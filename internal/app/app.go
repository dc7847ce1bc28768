package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"talentbridge_backend/database"
	"talentbridge_backend/internal/auth"
	"talentbridge_backend/internal/config"
	"talentbridge_backend/internal/email"
	"talentbridge_backend/internal/handlers"
	"talentbridge_backend/internal/logger"
	"talentbridge_backend/internal/middleware"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/repositories"
	"talentbridge_backend/internal/routes"
	"talentbridge_backend/internal/services"
	"talentbridge_backend/internal/validator"
	"talentbridge_backend/internal/workers"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(db); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	emailProvider := buildEmailProvider(cfg)
	defer emailProvider.Close()

	ginRouter, background := SetupRouter(cfg, db, emailProvider)

	for _, worker := range background {
		if err := worker.Start(); err != nil {
			logger.Fatal("Failed to start background worker", "error", err)
		}
		defer worker.Stop()
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Worker is the lifecycle every background worker exposes.
type Worker interface {
	Start() error
	Stop()
}

// SetupRouter builds the full application graph. Split out from Run so the
// test harness can construct the same router against its own database.
func SetupRouter(cfg *config.Config, db *gorm.DB, emailProvider email.Provider) (*gin.Engine, []Worker) {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	opportunityRepo := repositories.NewOpportunityRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Services
	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)
	svc := &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, tokens),
		UserService:         services.NewUserService(userRepo),
		OpportunityService:  services.NewOpportunityService(opportunityRepo, applicationRepo, userRepo, notificationService),
		ApplicationService:  services.NewApplicationService(applicationRepo, opportunityRepo, userRepo, notificationService),
		NotificationService: notificationService,
	}

	// Handlers
	v := validator.New()
	base := handlers.NewBaseHandler(v)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, svc.AuthService),
		UserHandler:         handlers.NewUserHandler(base, svc.UserService, tokens),
		OpportunityHandler:  handlers.NewOpportunityHandler(base, svc.OpportunityService, svc.ApplicationService, tokens),
		ApplicationHandler:  handlers.NewApplicationHandler(base, svc.ApplicationService, tokens),
		NotificationHandler: handlers.NewNotificationHandler(base, svc.NotificationService, tokens),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(cfg.CORS.AllowedOrigins),
	)

	routes.RegisterRoutes(ginRouter, appHandlers)

	background := []Worker{
		workers.NewNotificationWorker(svc.NotificationService, cfg.Workers.CleanupSchedule, cfg.Workers.NotificationRetentionDays),
		workers.NewOpportunityWorker(opportunityRepo, cfg.Workers.ExpirySchedule),
	}

	return ginRouter, background
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email disabled, using noop provider")
		return email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("SMTP provider misconfigured, using noop provider", "error", err)
		return email.NoopProvider{}
	}
	return provider
}

// seedFirstAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no admin exists yet.
func seedFirstAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user seeded", "email", adminEmail)
	return nil
}
