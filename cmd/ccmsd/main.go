package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ccms-backend/config"
	"ccms-backend/internal/activity"
	"ccms-backend/internal/api"
	"ccms-backend/internal/db"
	"ccms-backend/internal/notification"
	"ccms-backend/internal/seed"
	"ccms-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
)

// noopNotifier is used when push notifications are disabled.
type noopNotifier struct{}

func (noopNotifier) Dispatch(notification.Event) {}

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "ccms-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the complaint store, optionally preloaded with demo data
	var initial []store.Complaint
	if cfg.Store.SeedDemoData() {
		initial = seed.Complaints()
	}
	complaints := store.NewMemStore(initial, cfg.Store.DefaultAssignee)
	logger.Printf("complaint store initialized with %d complaints", len(initial))

	// Initialize the activity logger and run its janitor in the background
	activityLogger := activity.NewLogger(gormDB, cfg.Activity.MaxLogs, cfg.Activity.RetentionDays)
	go activityLogger.Run(ctx, time.Duration(cfg.Activity.PruneIntervalMinutes)*time.Minute)

	// Initialize the notification worker pool when push is configured
	var notifier api.Notifier = noopNotifier{}
	var webpushOptions *webpush.Options
	if cfg.Push.Enabled {
		if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
			logger.Fatalf("VAPID keys must be configured when push is enabled. Please generate them and add them to your config file.")
		}
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool := notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions)
		pool.Start(ctx)
		notifier = pool
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	}

	// Initialize router
	router := api.NewRouter(complaints, gormDB, activityLogger, notifier, webpushOptions, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
