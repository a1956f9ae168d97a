// Backoffice server — verifies member CPFs against the HubSoft ERP, runs
// the support-ticket flows, and drives the upstream integration queue.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/atlasfibra/backoffice/pkg/api"
	"github.com/atlasfibra/backoffice/pkg/cache"
	"github.com/atlasfibra/backoffice/pkg/cleanup"
	"github.com/atlasfibra/backoffice/pkg/commands"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/database"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/masking"
	"github.com/atlasfibra/backoffice/pkg/notify"
	"github.com/atlasfibra/backoffice/pkg/ratelimit"
	"github.com/atlasfibra/backoffice/pkg/scheduler"
	"github.com/atlasfibra/backoffice/pkg/services"
	"github.com/atlasfibra/backoffice/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting backoffice",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup for this pod
	if err := scheduler.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal, periodic detection covers the rest
	}

	// 4. Event bus, masking, audit trail
	bus := events.NewBus(cfg.Events.MaxConcurrentHandlers, cfg.Events.HandlerTimeout)
	masker := masking.NewService()
	events.NewAuditLogger(masker).Register(bus)

	// 5. Upstream client and shared resources
	hubPassword := os.Getenv(cfg.HubSoft.PasswordEnv)
	if hubPassword == "" {
		slog.Error("Upstream password not set", "env", cfg.HubSoft.PasswordEnv)
		os.Exit(1)
	}
	hub := hubsoft.NewHTTPClient(hubsoft.Options{
		BaseURL:        cfg.HubSoft.BaseURL,
		Username:       cfg.HubSoft.Username,
		Password:       hubPassword,
		RequestTimeout: cfg.HubSoft.RequestTimeout,
		BurstLimit:     cfg.HubSoft.BurstLimit,
	})
	limiter := ratelimit.NewWindow(cfg.HubSoft.MaxRequestsPerMinute, time.Minute)
	responseCache := cache.New(cfg.Cache.DefaultTTL, cfg.Cache.MaxSize)

	cpfSalt := os.Getenv("CPF_HASH_SALT")
	if cpfSalt == "" {
		slog.Error("CPF_HASH_SALT not set")
		os.Exit(1)
	}

	// 6. Domain services
	users := services.NewUserService(dbClient.Client, bus)
	duplicates := services.NewDuplicateService(dbClient.Client, bus)
	verifications := services.NewVerificationService(
		dbClient.Client, bus, hub, users, duplicates, cfg.Verification, cpfSalt)
	integrations := services.NewIntegrationService(dbClient.Client, bus)
	conversations := services.NewConversationService(
		dbClient.Client, bus, integrations, cfg.Conversation)
	tickets := services.NewTicketService(dbClient.Client, bus, hub)
	slog.Info("Services initialized")

	// 7. Slack notifications (optional)
	if cfg.Slack.Enabled {
		slackToken := os.Getenv(cfg.Slack.TokenEnv)
		notifier := notify.NewService(slackToken, cfg.Slack.Channel, masker)
		if notifier == nil {
			slog.Warn("Slack notifications enabled but token or channel missing")
		} else {
			notifier.Register(bus)
			slog.Info("Slack notifications registered", "channel", cfg.Slack.Channel)
		}
	}

	// 8. Integration scheduler
	breaker := scheduler.NewBreaker(hub, cfg.Scheduler)
	dispatcher := scheduler.NewDispatcher(hub, tickets, responseCache, limiter)
	workerPool := scheduler.NewWorkerPool(
		podID, dbClient.Client, cfg.Scheduler, dispatcher, breaker, limiter, bus)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Background cleanup loops
	cleanupService := cleanup.NewService(
		cfg.Retention, verifications, conversations, tickets, integrations, responseCache)
	cleanupService.Start(ctx)

	// 10. HTTP server
	commandDispatcher := commands.NewDispatcher(
		verifications, conversations, tickets, users, duplicates, integrations)
	httpServer := api.NewServer(commandDispatcher, dbClient, workerPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Backoffice started",
		"pod_id", podID,
		"workers", cfg.Scheduler.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: cleanup loop, worker pool, then HTTP
	cleanupService.Stop()

	poolCtx, poolCancel := context.WithTimeout(ctx, cfg.Scheduler.GracefulShutdownTimeout)
	defer poolCancel()
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-poolCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight dispatches will be orphan-recovered")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
