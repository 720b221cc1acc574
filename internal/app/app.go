package app

import (
	"fmt"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstEmployer(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first employer account", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, gormDB)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
			UseTLS:   cfg.Email.UseTLS,
		})
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP is not configured. Using mock email provider.")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)

	authService := services.NewAuthService(userRepo, emailProvider)
	jobService := services.NewJobService(jobRepo)

	return &services.ServiceContainer{
		AuthService:  authService,
		JobService:   jobService,
		EmailService: emailProvider,
	}
}

func initializeHandlers(services *services.ServiceContainer, gormDB *gorm.DB) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, services.AuthService),
		JobHandler:    handlers.NewJobHandler(baseHandler, services.JobService),
		HealthHandler: handlers.NewHealthHandler(gormDB),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstEmployer makes sure a first employer account exists so the board
// is usable right after a fresh deploy. Skipped when the env vars are unset.
func seedFirstEmployer(db *gorm.DB, cfg *config.Config) error {
	seedEmail := cfg.SeedEmployerEmail
	seedPassword := cfg.SeedEmployerPassword

	if seedEmail == "" || seedPassword == "" {
		logger.Warn("SEED_EMPLOYER_EMAIL or SEED_EMPLOYER_PASSWORD is not set. Skipping employer seeding.")
		return nil
	}

	var existing models.User
	if err := db.Where("email = ?", seedEmail).First(&existing).Error; err == nil {
		logger.Info("Seed employer already exists. Skipping creation.", "email", seedEmail)
		return nil
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &models.User{
		Name:         "Board Admin",
		Email:        seedEmail,
		PasswordHash: hash,
		Role:         models.UserRoleEmployer,
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create seed employer: %w", err)
	}

	logger.Info("Seed employer account created", "email", seedEmail)
	return nil
}
