// Package main is the entry point for the schedule companion daemon.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/api"
	"github.com/BokGosha/schedule-coursework/internal/config"
	"github.com/BokGosha/schedule-coursework/internal/remote"
	"github.com/BokGosha/schedule-coursework/internal/session"
	"github.com/BokGosha/schedule-coursework/internal/sharing"
	"github.com/BokGosha/schedule-coursework/internal/storage"
	"github.com/BokGosha/schedule-coursework/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	configPath := flag.String("config", "companion.yaml", "Path to YAML configuration file")
	addr := flag.String("addr", "", "Local HTTP listen address (overrides config)")
	dataDir := flag.String("data", "", "Data directory for the preferences database (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting schedule companion (version: %s)...", version)

	// Initialize database
	dbPath := filepath.Join(cfg.DataDir, "companion.db")
	db, err := storage.NewDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations complete")

	prefs := storage.NewPreferenceRepository(db)

	// Initialize WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Bind the backend session
	client := remote.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Timeout())
	sess := session.New(client)

	initCtx, cancelInit := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancelInit()
	if err := sess.Init(initCtx); err != nil {
		log.Fatalf("Failed to resolve current user: %v", err)
	}
	log.Printf("Bound to backend user %d", sess.UserID())

	// Warm the aggregated snapshot. A cold start with an unreachable
	// backend is tolerated; the first request retries.
	if _, err := sess.Refresh(initCtx); err != nil {
		log.Printf("Warning: initial refresh failed: %v", err)
	}

	manager := sharing.NewManager(client, func(ctx context.Context) {
		if _, err := sess.Refresh(ctx); err != nil {
			log.Printf("Refresh after grant mutation failed: %v", err)
		}
	})

	router := api.NewRouter(db, prefs, sess, manager, hub)

	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Listen)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
