package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayview/internal/app/calendar"
	"stayview/internal/app/sessions"
	"stayview/internal/domain/tenant"
	"stayview/internal/infra/broker/kafka"
	"stayview/internal/infra/config"
	"stayview/internal/infra/currency"
	mongodb "stayview/internal/infra/db/mongo"
	ginserver "stayview/internal/infra/http/gin"
	"stayview/internal/infra/obs"
	"stayview/internal/infra/ratesapi"
	"stayview/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
		cfg.Env = env
		cfg.HTTPAddr = getenv("HTTP_ADDR", ":8080")
		cfg.RatesAPIBaseURL = getenv("RATES_API_URL", "http://localhost:9090")
		cfg.RatesFetchTime = 10 * time.Second
		cfg.CurrencyCallTime = 5 * time.Second
	}

	tenants, ready := buildTenantRepository(ctx, cfg, logger)
	events := buildEventPublisher(cfg, logger)

	fetcher := &ratesapi.Client{
		HTTP:    &http.Client{Timeout: cfg.RatesFetchTime},
		BaseURL: cfg.RatesAPIBaseURL,
		Logger:  logger,
	}
	converter := &currency.Converter{
		HTTP:    &http.Client{Timeout: cfg.CurrencyCallTime},
		BaseURL: cfg.CurrencyBaseURL,
		APIHost: cfg.CurrencyAPIHost,
		APIKey:  cfg.CurrencyAPIKey,
		Logger:  logger,
	}

	service := &sessions.Service{
		Tenants:   tenants,
		Store:     memory.NewSessionStore(),
		Fetcher:   fetcher,
		Events:    events,
		Converter: converter,
		Logger:    logger,
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: ready,
	}, ginserver.Handlers{
		Session: ginserver.SessionHandler{Sessions: service},
		Tenant:  ginserver.TenantHandler{Tenants: tenants},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// buildTenantRepository prefers MongoDB and falls back to seeded
// in-memory fixtures when no MONGO_URI is configured or the connection
// fails.
func buildTenantRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (tenant.Repository, func() error) {
	if cfg.MongoURI != "" {
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err == nil {
			logger.Info("tenant configuration from mongodb", "db", cfg.MongoDB)
			return mongodb.NewTenantRepository(client.DB), func() error { return client.Ping(ctx) }
		}
		logger.Warn("mongodb unavailable, using in-memory tenants", "error", err)
	}
	repo := memory.NewTenantRepository()
	repo.SeedDefaults()
	return repo, func() error { return nil }
}

// buildEventPublisher returns nil when no brokers are configured; the
// controller treats a nil publisher as "analytics disabled".
func buildEventPublisher(cfg config.Config, logger *slog.Logger) calendar.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("kafka disabled, widget events will not be published")
		return nil
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Warn("kafka unavailable, widget events will not be published", "error", err)
		return nil
	}
	return kafka.EventPublisher{Producer: producer, Topic: cfg.KafkaTopic}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
