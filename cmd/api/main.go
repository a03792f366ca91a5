package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nywele/salon-api/internal/application/service"
	"github.com/nywele/salon-api/internal/config"
	"github.com/nywele/salon-api/internal/infrastructure/cache"
	"github.com/nywele/salon-api/internal/infrastructure/database"
	"github.com/nywele/salon-api/internal/infrastructure/repository"
	"github.com/nywele/salon-api/internal/presentation/http/handler"
	"github.com/nywele/salon-api/internal/presentation/http/routes"
	"github.com/nywele/salon-api/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed default data
	seed := config.Seed()
	if err := database.SeedDefaultData(db, seed.AdminEmail, seed.AdminPassword); err != nil {
		logger.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	clientRepo := repository.NewClientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	metricRepo := repository.NewWeeklyMetricRepository(db)
	commissionRepo := repository.NewCommissionTierRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize report cache
	var reportCache service.ReportCache
	if cfg.ReportCache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		reportCache = cache.NewRedisReportCache(redisClient, cfg.ReportCache.TTL)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	employeeService := service.NewEmployeeService(employeeRepo, locationRepo)
	clientService := service.NewClientService(clientRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, employeeRepo, clientRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	reportService := service.NewStaffReportService(
		appointmentRepo,
		saleRepo,
		metricRepo,
		employeeRepo,
		clientRepo,
		locationRepo,
		commissionRepo,
		reportCache,
		logger,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		Client:      handler.NewClientHandler(clientService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Report:      handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
	)

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
