// Package flights manages scheduled flights and serves the per-flight seat
// map. Flight reads go through the Redis cache; every write invalidates the
// affected flight and broadcasts a change notification.
package flights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oleksiirud/skyport/internal/domain"
	redisx "github.com/oleksiirud/skyport/internal/redis"
	"github.com/oleksiirud/skyport/internal/repository"
	postgresrepo "github.com/oleksiirud/skyport/internal/repository/postgres"
	redisrepo "github.com/oleksiirud/skyport/internal/repository/redis"
	"github.com/oleksiirud/skyport/internal/uow"
)

type Config struct {
	DetailTTL  time.Duration
	SeatMapTTL time.Duration
}

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisx.FlightsPubSub
	uow    *uow.UoW
	cfg    Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisx.FlightsPubSub,
	cfg Config,
) *Service {
	if cfg.DetailTTL <= 0 {
		cfg.DetailTTL = 30 * time.Second
	}
	if cfg.SeatMapTTL <= 0 {
		// Seat maps go stale the moment an order commits, so the TTL is a
		// backstop behind the explicit invalidation.
		cfg.SeatMapTTL = 10 * time.Second
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
	}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.FlightDetail, error) {
	const op = "service.flights.List"

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	out, err := s.store.Flights().ListFlights(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	const op = "service.flights.Get"

	load := func(ctx context.Context) (*domain.FlightDetail, error) {
		return s.store.Flights().GetFlight(ctx, id)
	}

	var fd *domain.FlightDetail
	var err error
	if s.cache != nil {
		fd, err = redisrepo.GetOrSetJSON(ctx, s.cache, redisx.KeyFlightDetail(id), s.cfg.DetailTTL, load)
	} else {
		fd, err = load(ctx)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return fd, nil
}

// SeatMap returns the flight's seat layout together with every booked seat.
func (s *Service) SeatMap(ctx context.Context, id int64) (*domain.FlightSeatMap, error) {
	const op = "service.flights.SeatMap"

	load := func(ctx context.Context) (*domain.FlightSeatMap, error) {
		return s.store.Flights().FlightSeatMap(ctx, id)
	}

	var sm *domain.FlightSeatMap
	var err error
	if s.cache != nil {
		sm, err = redisrepo.GetOrSetJSON(ctx, s.cache, redisx.KeyFlightSeatMap(id), s.cfg.SeatMapTTL, load)
	} else {
		sm, err = load(ctx)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sm, nil
}

func validateFlight(f domain.Flight) error {
	if f.RouteID <= 0 || f.AirplaneID <= 0 {
		return ErrInvalidInput
	}
	if f.DepartureTime.IsZero() || f.ArrivalTime.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

// Create inserts the flight and its crew assignments in one transaction.
func (s *Service) Create(ctx context.Context, f domain.Flight) (*domain.Flight, error) {
	const op = "service.flights.Create"

	if err := validateFlight(f); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var created *domain.Flight

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		out, err := s.store.Flights().With(tx).CreateFlight(ctx, f)
		if err != nil {
			if errors.Is(err, repository.ErrBadReference) {
				return fmt.Errorf("%s: %w", op, ErrBadReference)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		created = out

		after(func(ctx context.Context) {
			s.notifyChanged(ctx, out.ID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) Update(ctx context.Context, f domain.Flight) (*domain.Flight, error) {
	const op = "service.flights.Update"

	if f.ID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}
	if err := validateFlight(f); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var updated *domain.Flight

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		out, err := s.store.Flights().With(tx).UpdateFlight(ctx, f)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrNotFound)
			}
			if errors.Is(err, repository.ErrBadReference) {
				return fmt.Errorf("%s: %w", op, ErrBadReference)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		updated = out

		after(func(ctx context.Context) {
			s.notifyChanged(ctx, out.ID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.flights.Delete"

	if err := s.store.Flights().DeleteFlight(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notifyChanged(ctx, id)
	return nil
}

func (s *Service) notifyChanged(ctx context.Context, flightID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlight(ctx, flightID)
	}
	if s.pubsub != nil {
		_ = s.pubsub.PublishFlightChanged(ctx, flightID)
	}
}
