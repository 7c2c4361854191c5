// cmd/sqlseal-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/sealkit/sqlseal/internal/api/rest/v1"
	"github.com/sealkit/sqlseal/internal/app"
	"github.com/sealkit/sqlseal/internal/domain/encryption"
	"github.com/sealkit/sqlseal/internal/infrastructure/persistence"
	"github.com/sealkit/sqlseal/internal/infrastructure/persistence/models"
	"github.com/sealkit/sqlseal/internal/infrastructure/registry"
	"github.com/sealkit/sqlseal/internal/infrastructure/sqlitecodec"
	"github.com/sealkit/sqlseal/internal/pkg/config"
	"github.com/sealkit/sqlseal/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-api.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db             *gorm.DB
	keyService     encryption.KeyService
	registry       encryption.ConnectionRegistry
	keyChangeAudit encryption.KeyChangeAuditService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.KeyChangeModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	keyChangeRepo, err := persistence.NewGormKeyChangeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key change repository: %w", err)
	}

	// Initialize services
	keyService, err := app.NewEncryptionService(sqlitecodec.New(), sqlitecodec.Available(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	keyChangeAudit, err := app.NewKeyChangeAuditService(keyChangeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key change audit service: %w", err)
	}

	connectionRegistry, err := registry.NewSQLiteRegistry(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection registry: %w", err)
	}

	if keyService.IsEnabled() {
		log.Info("SQLite encryption codec is available in this build")
	} else {
		log.Info(encryption.NotEnabledMessage)
	}

	return &appDependencies{
		db:             db,
		keyService:     keyService,
		registry:       connectionRegistry,
		keyChangeAudit: keyChangeAudit,
	}, nil
}

// close releases registered SQLite connections and the audit store.
func (deps *appDependencies) close(log logger.Logger) {
	if err := deps.registry.CloseAll(); err != nil {
		log.Error("failed to close registered databases ", err)
	}
	if err := persistence.CloseDB(deps.db); err != nil {
		log.Error("failed to close audit database ", err)
	}
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.keyService,
		deps.registry,
		deps.keyChangeAudit,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
