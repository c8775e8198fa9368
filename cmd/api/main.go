package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mayaverdell/threadline-backend/api/routes"
	"github.com/mayaverdell/threadline-backend/internal/admins"
	"github.com/mayaverdell/threadline-backend/internal/catalog"
	"github.com/mayaverdell/threadline-backend/internal/inventory"
	"github.com/mayaverdell/threadline-backend/internal/orders"
	"github.com/mayaverdell/threadline-backend/internal/reservations"
	"github.com/mayaverdell/threadline-backend/internal/stats"
	"github.com/mayaverdell/threadline-backend/pkg/config"
	"github.com/mayaverdell/threadline-backend/pkg/db"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
	"github.com/mayaverdell/threadline-backend/pkg/migrate"
	"github.com/mayaverdell/threadline-backend/pkg/redis"
)

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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis only backs the readiness check here, so the API still serves
	// without it and /health/ready skips the cache ping.
	var cachePinger db.Pinger
	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Warn(context.Background(), "redis unavailable, starting without cache readiness")
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		cachePinger = redisClient
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService := catalog.NewService(catalogRepo)
	reservationService := reservations.NewService(
		dbClient,
		reservations.NewRepository(dbClient.DB()),
		inventory.NewService(),
		logg,
	)
	statsService := stats.NewService(catalogRepo)
	ordersRepo := orders.NewRepository(dbClient.DB())
	adminChecker := admins.NewRepository(dbClient.DB())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			cachePinger,
			catalogService,
			reservationService,
			statsService,
			ordersRepo,
			adminChecker,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
