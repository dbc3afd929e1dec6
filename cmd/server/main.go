// @title           Freelance Dashboard API
// @version         1.0
// @description     Role-scoped dashboard, time log and reports for a freelance business.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/dashboard/internal/api"
	"github.com/freelancehub/dashboard/internal/api/handler"
	"github.com/freelancehub/dashboard/internal/core/ports"
	"github.com/freelancehub/dashboard/internal/core/service"
	mongostore "github.com/freelancehub/dashboard/internal/infrastructure/db/mongo"
	redisstore "github.com/freelancehub/dashboard/internal/infrastructure/db/redis"
	"github.com/freelancehub/dashboard/internal/infrastructure/db/sqlite"
	"github.com/freelancehub/dashboard/internal/pkg/config"
	"github.com/freelancehub/dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "freelance-dashboard",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	checks := map[string]handler.PingFunc{}

	store, closeStore, err := openStore(ctx, cfg, checks)
	if err != nil {
		return err
	}
	defer closeStore()

	var idem ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idem = redisstore.NewIdempotencyStore(rdb)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotent writes enabled")
	}

	if cfg.SeedOnStartup {
		if _, err := service.NewSeeder(store, nil, logger.Component("seed")).Seed(ctx); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Dependencies{
		Store:       store,
		Idempotency: idem,
		Checks:      checks,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		Logger:      log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openStore connects the configured backend and registers its readiness check.
func openStore(ctx context.Context, cfg *config.Config, checks map[string]handler.PingFunc) (ports.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return ports.Store{}, nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return ports.Store{}, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		checks["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		return mongostore.NewStore(db), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		db, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return ports.Store{}, nil, err
		}
		checks["sqlite"] = db.Ping
		return db.Store(), func() { _ = db.Close() }, nil
	}
}
