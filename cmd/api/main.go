package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pix-notify/config"
	deviceAdapter "pix-notify/internal/adapter/device"
	"pix-notify/internal/adapter/gateway/mercadopago"
	httpHandler "pix-notify/internal/adapter/http/handler"
	fileStorage "pix-notify/internal/adapter/storage/file"
	"pix-notify/internal/adapter/storage/memory"
	pgStorage "pix-notify/internal/adapter/storage/postgres"
	redisStorage "pix-notify/internal/adapter/storage/redis"
	"pix-notify/internal/core/ports"
	"pix-notify/internal/service"
	"pix-notify/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env for local development; absent file is fine
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Int("port", cfg.Server.Port).
		Str("dedup_backend", cfg.Dedup.Backend).
		Bool("poll_enabled", cfg.Poll.Enabled).
		Msg("Starting PIX notification service")

	if cfg.Gateway.AccessToken == "" {
		log.Warn().Msg("gateway access token not configured, payment confirmation will fail")
	}

	ctx, cancelPoll := context.WithCancel(context.Background())
	defer cancelPoll()

	// Dedup store, selected by backend
	var (
		dedup          ports.DedupStore
		healthCheckers []ports.HealthChecker
		rateLimitStore *redisStorage.RateLimitStore
	)

	switch cfg.Dedup.Backend {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		dedup = redisStorage.NewDedupStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		dedup = pgStorage.NewDedupStore(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	case "file", "":
		dedup = fileStorage.NewDedupStore(cfg.Dedup.FilePath, log)
	default:
		log.Fatal().Str("backend", cfg.Dedup.Backend).Msg("Unknown dedup backend")
	}

	// Device registry
	registry := memory.NewDeviceRegistry(cfg.Registry.StalenessWindow)

	// Gateway client, notifier, pipeline
	gateway := mercadopago.NewClient(cfg.Gateway, nil, log)
	notifier := deviceAdapter.NewNotifier(cfg.Device, nil, log)
	pipeline := service.NewPipelineService(dedup, gateway, notifier, service.PipelineOptions{
		AcceptNonPix:          cfg.Pipeline.AcceptNonPix,
		RequeueFailedNotifies: cfg.Pipeline.RequeueFailedNotifies,
	}, log)

	// Poll loop: the safety net for webhook deliveries that never arrive
	if cfg.Poll.Enabled {
		poller := service.NewPoller(gateway, pipeline, cfg.Poll.Interval, log)
		poller.Start(ctx)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Pipeline:       pipeline,
		Registry:       registry,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		SharedSecret:   cfg.Intake.SharedSecret,
		Logger:         log,
	})

	// HTTP server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	cancelPoll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Final flush of the processed-ids set
	if err := dedup.Persist(); err != nil {
		log.Error().Err(err).Msg("Failed to persist processed ids on shutdown")
	}

	log.Info().Msg("Server exited")
}
