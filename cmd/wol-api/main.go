package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"wol-api/internal/api"
	"wol-api/internal/catalog"
	"wol-api/internal/config"
	"wol-api/internal/dailytext"
	"wol-api/internal/event"
	"wol-api/internal/logging"
	"wol-api/internal/media"
	"wol-api/internal/upstream"
)

type eventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
	Close()
}

func main() {
	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Event publisher (RabbitMQ), optional
	var publisher eventPublisher = event.NopPublisher{}
	if cfg.RabbitURI != "" {
		rp, err := event.NewRabbitPublisher(cfg.RabbitURI, cfg.RabbitExchange, logger)
		if err != nil {
			logger.Fatal("failed to init rabbit publisher", zap.Error(err))
		}
		publisher = rp
	}
	defer publisher.Close()

	// Upstream clients
	httpClient := &http.Client{Timeout: cfg.Timeout}
	up := upstream.NewClient(httpClient, logger)

	dailyService := dailytext.NewService(
		dailytext.NewWOLClient(cfg.DailyTextBaseURL, up),
		dailytext.NewExtractor(),
		publisher,
		logger,
	)
	catalogFetcher := catalog.NewFetcher(cfg.CatalogBaseURL, up, logger)
	aggregator := media.NewAggregator(
		media.NewMediatorClient(cfg.MediaItemBaseURL, up),
		cfg.MediaConcurrency,
		cfg.Grouping(),
		publisher,
		logger,
	)

	router := api.NewRouter(api.NewHandlers(dailyService, catalogFetcher, aggregator, logger))
	srv := serve(cfg.HTTPAddr, router, logger)

	logger.Info("service started",
		zap.String("addr", cfg.HTTPAddr),
		zap.Stringer("grouping", cfg.Grouping()),
		zap.Bool("events", cfg.RabbitURI != ""))

	// Block until we receive a signal / ctx cancelled
	<-ctx.Done()
	logger.Info("shutdown signal received, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}

func serve(addr string, handler http.Handler, logger *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return srv
}
