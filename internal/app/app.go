package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oleksiirud/skyport/internal/auth"
	"github.com/oleksiirud/skyport/internal/config"
	"github.com/oleksiirud/skyport/internal/geo"
	"github.com/oleksiirud/skyport/internal/kafka"
	"github.com/oleksiirud/skyport/internal/postgres"
	redisx "github.com/oleksiirud/skyport/internal/redis"
	postgresrepo "github.com/oleksiirud/skyport/internal/repository/postgres"
	redisrepo "github.com/oleksiirud/skyport/internal/repository/redis"
	"github.com/oleksiirud/skyport/internal/service"
	"github.com/oleksiirud/skyport/internal/service/flights"
	httpgin "github.com/oleksiirud/skyport/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	events     *kafka.Producer
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redisx.New(context.Background(), redisx.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisx.NewFlightsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(
		rdb, "orders", cfg.Orders.RateLimit, cfg.Orders.RateWindow)
	idem := redisrepo.NewIdempotencyStore(rdb, cfg.Orders.IdempotencyTTL)

	events := kafka.NewProducer(cfg.Kafka.Brokers)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	resolver := geo.NewNominatimResolver(cfg.Geo.NominatimURL, cfg.Geo.UserAgent, cfg.Geo.Timeout)

	services := service.NewServices(
		store, cache, pubsub, idem, limiter, events, tokens, resolver, logger,
		service.Config{Flights: flights.Config{}},
	)

	router := httpgin.NewRouter(services, tokens, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		events: events,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.httpServer.Shutdown(ctx); err != nil {
			return err
		}
		return a.events.Close()
	})

	return g.Wait()
}
