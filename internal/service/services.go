package service

import (
	"log/slog"

	"github.com/oleksiirud/skyport/internal/auth"
	"github.com/oleksiirud/skyport/internal/kafka"
	redisx "github.com/oleksiirud/skyport/internal/redis"
	postgres "github.com/oleksiirud/skyport/internal/repository/postgres"
	redisrepo "github.com/oleksiirud/skyport/internal/repository/redis"
	"github.com/oleksiirud/skyport/internal/service/accounts"
	"github.com/oleksiirud/skyport/internal/service/catalog"
	"github.com/oleksiirud/skyport/internal/service/flights"
	"github.com/oleksiirud/skyport/internal/service/orders"
	"github.com/oleksiirud/skyport/internal/service/routes"
)

type Services struct {
	Accounts *accounts.Service
	Catalog  *catalog.Service
	Routes   *routes.Service
	Flights  *flights.Service
	Orders   *orders.Service
}

type Config struct {
	Flights flights.Config
}

func NewServices(
	store *postgres.Store,
	cache *redisrepo.Cache,
	pubsub *redisx.FlightsPubSub,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
	events *kafka.Producer,
	tokens *auth.TokenManager,
	resolver routes.DistanceResolver,
	log *slog.Logger,
	cfg Config,
) *Services {
	return &Services{
		Accounts: accounts.New(store.Users(), tokens),
		Catalog:  catalog.New(store.Catalog()),
		Routes:   routes.New(store.Routes(), resolver),
		Flights:  flights.New(store, cache, pubsub, cfg.Flights),
		Orders:   orders.New(postgres.NewOrderStore(store), events, cache, idem, limiter, log),
	}
}
