package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/shopassist-backend/api/routes"
	"github.com/angelmondragon/shopassist-backend/internal/chatbot"
	"github.com/angelmondragon/shopassist-backend/internal/chathistory"
	"github.com/angelmondragon/shopassist-backend/internal/checkout"
	"github.com/angelmondragon/shopassist-backend/internal/orders"
	"github.com/angelmondragon/shopassist-backend/internal/products"
	"github.com/angelmondragon/shopassist-backend/pkg/auth"
	"github.com/angelmondragon/shopassist-backend/pkg/config"
	"github.com/angelmondragon/shopassist-backend/pkg/db"
	"github.com/angelmondragon/shopassist-backend/pkg/env"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/angelmondragon/shopassist-backend/pkg/metrics"
	"github.com/angelmondragon/shopassist-backend/pkg/migrate"
	"github.com/angelmondragon/shopassist-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	productRepo := products.NewRepository(dbClient.DB())
	if cfg.Catalog.SeedOnStart {
		seeder, err := products.NewSeeder(productRepo, logg, cfg.Catalog.RandomSeed)
		if err != nil {
			return err
		}
		if _, err := seeder.SeedIfEmpty(ctx, cfg.Catalog.MinSize); err != nil {
			return err
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
	} else {
		logg.Warn(ctx, "redis not configured, checkout idempotency and chatbot rate limiting disabled")
	}

	verifier, err := auth.NewVerifier(ctx, cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	productService, err := products.NewService(productRepo)
	if err != nil {
		return err
	}
	historyService, err := chathistory.NewService(chathistory.NewRepository(dbClient.DB()))
	if err != nil {
		return err
	}
	resolver, err := chatbot.NewResolver(productRepo)
	if err != nil {
		return err
	}
	chatbotService, err := chatbot.NewService(resolver, historyService, logg, metrics.NewChatbotMetrics(registry))
	if err != nil {
		return err
	}
	checkoutService, err := checkout.NewService(
		dbClient,
		productRepo,
		orders.NewRepository(dbClient.DB()),
		logg,
		metrics.NewCheckoutMetrics(registry),
	)
	if err != nil {
		return err
	}

	addr := ":" + env.Get(cfg.App.Port, "PORT")
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"db_dialect":    dbClient.Dialect(),
		"auth_provider": cfg.Auth.Provider,
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			verifier,
			registry,
			metrics.NewHTTPMetrics(registry),
			productService,
			chatbotService,
			historyService,
			checkoutService,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
