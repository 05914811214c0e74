package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"atlas_inventory_server/config"
	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/events"
	"atlas_inventory_server/internal/http"
	"atlas_inventory_server/internal/services"
	"atlas_inventory_server/pkg/colors"

	"github.com/joho/godotenv"
)

func main() {
	// Print attractive banner
	colors.PrintBanner()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	} else {
		colors.PrintSuccess("Environment configuration loaded from .env file")
	}

	// Initialize database connection
	colors.PrintInfo("Initializing database connection...")
	if err := db.Initialize(); err != nil {
		colors.PrintError("Failed to initialize database: %v", err)
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	colors.PrintHeader("ATLAS INVENTORY SERVER INITIALIZATION")
	colors.PrintServer("🌐", "HTTP Server configured for port %s (REST API Access)", httpPort)

	// The event hub must exist before the watchdog can broadcast sweeps
	events.Initialize()

	// Start the heartbeat watchdog
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watchdog := services.NewWatchdogService(config.GetWatchdogConfig())
	watchdog.Start(ctx)

	errorChan := make(chan error, 1)

	// Start HTTP Server in a goroutine
	go func() {
		httpServer := http.NewServer(httpPort)

		colors.PrintSubHeader("Available REST API Endpoints")
		colors.PrintEndpoint("POST", "/api/v1/auth/login", "Operator authentication")
		colors.PrintEndpoint("GET", "/api/v1/facilities", "List facilities")
		colors.PrintEndpoint("GET", "/api/v1/groups", "List element groups")
		colors.PrintEndpoint("GET", "/api/v1/roles", "List element roles")
		colors.PrintEndpoint("GET", "/api/v1/platforms", "List platforms")
		colors.PrintEndpoint("GET", "/api/v1/racks", "List racks")
		colors.PrintEndpoint("GET", "/api/v1/racks/:id", "Rack contents")
		colors.PrintEndpoint("POST", "/api/v1/racks/:id/placements", "Place element into rack")
		colors.PrintEndpoint("GET", "/api/v1/elements", "List elements")
		colors.PrintEndpoint("POST", "/api/v1/elements/settings", "Submit element settings")
		colors.PrintEndpoint("POST", "/api/v1/elements/:id/heartbeat", "Record element heartbeat")
		colors.PrintEndpoint("POST", "/api/v1/elements/:id/images", "Report installed image")
		colors.PrintEndpoint("GET", "/api/v1/images", "List images")
		colors.PrintEndpoint("GET", "/api/v1/snapshots/racks", "Export rack snapshots")
		colors.PrintEndpoint("POST", "/api/v1/snapshots/racks", "Import rack snapshots")

		colors.PrintSubHeader("WebSocket Connection")
		colors.PrintEndpoint("GET", "/ws", "Real-time inventory events")

		if err := httpServer.Start(); err != nil {
			errorChan <- fmt.Errorf("HTTP server error: %v", err)
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errorChan:
		colors.PrintError("Server startup failed: %v", err)
		watchdog.Stop()
		return
	case <-quit:
		colors.PrintShutdown()
		watchdog.Stop()
		return
	}
}
