package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChIhtisham78/ShoppingMallPos/config"
	deliveryHttp "github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/http"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/http/handler"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/http/middleware"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/infrastructure/cache"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/infrastructure/database"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/repository"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/service"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/usecase"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/jwt"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db, log); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database migrations applied")
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger builds the JSON logger shared by every component
func setupLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	txManager := repository.NewTxManager(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	recentSaleRepo := repository.NewRecentSaleRepository(db)
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOtpRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	tokenStore := repository.NewRedisTokenStore(redisClient)

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	recentIndex := service.NewRecentSalesIndex(recentSaleRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, tokenStore)
	productUsecase := usecase.NewProductUsecase(log, txManager, productRepo, recentSaleRepo, auditService)
	saleUsecase := usecase.NewSaleUsecase(log, txManager, productRepo, saleRepo, recentIndex, auditService)
	importUsecase := usecase.NewImportUsecase(log, txManager, productRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(log, saleRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, productRepo, saleRepo, userRepo)
	userUsecase := usecase.NewUserUsecase(log, txManager, userRepo, otpRepo, saleRepo, auditService, cfg.Seed.SalesAgentPassword)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := authUsecase.EnsureAdmin(seedCtx, cfg.Seed); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	handlers := deliveryHttp.Handlers{
		Auth:     handler.NewAuthHandler(authUsecase, customValidator),
		Product:  handler.NewProductHandler(productUsecase, customValidator),
		Import:   handler.NewImportHandler(importUsecase, cfg.Upload.MaxBytes),
		Sale:     handler.NewSaleHandler(saleUsecase, customValidator),
		Report:   handler.NewReportHandler(reportUsecase, dashboardUsecase, customValidator),
		User:     handler.NewUserHandler(userUsecase, customValidator),
		AuditLog: handler.NewAuditLogHandler(auditLogUsecase),
	}

	router := deliveryHttp.NewRouter(
		handlers,
		middleware.NewAuthMiddleware(jwtService, tokenStore),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
