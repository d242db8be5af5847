// Package startup prepares the application server
package startup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/container"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/email"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/filestore"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/mongostore"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/security"
	"github.com/asikrahman/swe-portfolio-server/internal/presentation/http/server"
	"github.com/asikrahman/swe-portfolio-server/pkg/config"
)

// Initialize performs the complete startup sequence and blocks until
// shutdown.
func Initialize() error {
	setupGinMode()

	start := time.Now().UTC()
	ctx := context.Background()

	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.LogDirectory = config.LogDir
	loggerConfig.DefaultLevel = logging.ParseLevel(config.LogLevel)

	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	perfTracker := performance.NewTracker(logger)

	logger.Startup().Info("Starting portfolio server", "backend", config.StoreBackend)

	if config.JWTSecret == config.InsecureJWTSecretDefault {
		logger.Startup().Warn("JWT_SECRET is the insecure default; set a real secret before exposing this server")
	}

	// Step 1: Open the storage backend
	var store persistence.Store
	var mongoStore *mongostore.Store
	switch config.StoreBackend {
	case "mongo":
		mongoStore, err = mongostore.NewStore(ctx, config.MongoURI, config.MongoDatabase, logger)
		if err != nil {
			return fmt.Errorf("failed to open mongo store: %w", err)
		}
		store = mongoStore
	case "file":
		store, err = filestore.NewStore(config.DataDir, logger)
		if err != nil {
			return fmt.Errorf("failed to open file store: %w", err)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want file or mongo)", config.StoreBackend)
	}
	logger.Startup().Info("Storage backend ready", "backend", config.StoreBackend)

	// Step 2: Seed the admin account and profile on first run
	if err := seed(ctx, store, logger); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	// Step 3: Wire the email provider, if configured
	var mailer email.Service
	if config.ResendAPIKey != "" {
		mailer, err = email.NewService(config.ResendAPIKey, config.EmailFrom, config.EmailFromName, config.ContactEmailTo)
		if err != nil {
			return fmt.Errorf("failed to initialize email service: %w", err)
		}
		logger.Startup().Info("Email notifications enabled", "to", config.ContactEmailTo)
	} else {
		logger.Startup().Warn("RESEND_API_KEY not set; contact notifications disabled")
	}

	// Step 4: Build the dependency injection container
	appContainer := container.NewContainer(store, mailer, logger, perfTracker)
	logger.Startup().Info("Dependency injection container created")

	// Step 5: Start the HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port)

	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	if mongoStore != nil {
		if err := mongoStore.Close(shutdownCtx); err != nil {
			logger.Shutdown().Error("Error closing mongo connection", "error", err.Error())
		}
	}

	logger.Shutdown().Info("Application shutdown complete", "totalUptime", time.Since(start))
	return nil
}

// seed creates the admin account and a placeholder profile when the store
// is empty, mirroring a fresh deployment.
func seed(ctx context.Context, store persistence.Store, logger *logging.ChanneledLogger) error {
	count, err := store.Users().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}

	if count == 0 {
		hash, err := security.HashPassword(config.AdminPassword, config.BcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		now := time.Now().UTC()
		admin := &user.AdminUser{
			ID:           security.GenerateULID(),
			Email:        config.AdminEmail,
			PasswordHash: hash,
			Name:         config.AdminName,
			Role:         "admin",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.Users().Store(ctx, admin); err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}

		logger.Startup().Info("Seeded admin account", "email", admin.Email)
		if config.AdminPassword == "admin123" {
			logger.Startup().Warn("Admin account uses the default password; change ADMIN_PASSWORD immediately")
		}
	}

	_, err = store.Profile().Get(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		now := time.Now().UTC()
		placeholder := &content.Profile{
			ID:           security.GenerateULID(),
			Name:         config.AdminName,
			Designation:  "Software Engineer",
			Introduction: "Welcome to my portfolio.",
			Email:        config.AdminEmail,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.Profile().Store(ctx, placeholder); err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
		logger.Startup().Info("Seeded placeholder profile")
	} else if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}

	return nil
}

// setupGinMode configures the gin runtime mode before any engine exists.
func setupGinMode() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else if os.Getenv("GIN_MODE") == "" {
		log.Println("GIN_MODE not set, using debug mode")
	}
}
