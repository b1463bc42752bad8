// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/application/container"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/http/server"
	"github.com/QuillstackMedia/quillstack-go/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found -- config defaults will be used")
	}

	setupLogging()

	start := time.Now().UTC()

	// Step 1: Create dependency injection container
	log.Println("Initializing dependency injection container...")
	appContainer, err := container.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}

	logger := appContainer.Logger
	logger.Startup().Info("Container initialization complete - switching to channeled logging")
	logger.Startup().Info("Persisted query endpoint configured",
		"endpoint", config.CMSEndpointBase,
		"site", config.CMSSiteID)

	// Step 2: Verify CMS endpoint reachability (non-fatal; content regions
	// degrade independently when the endpoint is down)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := appContainer.CMSClient.Ping(pingCtx); err != nil {
		logger.Startup().Warn("CMS endpoint not reachable at startup", "error", err.Error())
	} else {
		logger.Startup().Info("CMS endpoint reachable")
	}
	cancelPing()

	// Step 3: Start HTTP server
	logger.Startup().Info("Starting HTTP server...")

	port := config.Port
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return appContainer.Logger.Close()
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
}
