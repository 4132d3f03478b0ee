package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bioscape/crm/api"
	"github.com/bioscape/crm/internal/config"
	"github.com/bioscape/crm/internal/db"
	"github.com/bioscape/crm/internal/repository/postgrest"
	"github.com/bioscape/crm/internal/repository/sqlite"
	"github.com/bioscape/crm/pkg/repository"
	"github.com/bioscape/crm/pkg/supabase"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting CRM server version %s (built at %s)", version, buildTime)

	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)
	supabase.SetLogger(logger)

	// Pick the store backend: Supabase in production, local sqlite otherwise
	var store repository.Store
	var closeStore func() error
	if cfg.Supabase.BaseURL != "" {
		client, err := supabase.NewDefaultClient(cfg.Supabase)
		if err != nil {
			log.Fatalf("Failed to create Supabase client: %v", err)
		}
		if err := client.Health(ctx); err != nil {
			log.Printf("Warning: Supabase health check failed: %v", err)
		}
		store = postgrest.New(client, logger)
		closeStore = client.Close
	} else {
		conn, err := db.New(ctx, cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := sqlite.EnsureSchema(ctx, conn); err != nil {
			log.Fatalf("Failed to apply schema: %v", err)
		}
		store = sqlite.New(conn, logger)
		closeStore = conn.Close
	}

	handler := api.SetupRoutes(cfg, version, buildTime, store)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := closeStore(); err != nil {
		log.Printf("Error closing store: %v", err)
	}

	log.Println("Server exited")
}
