// Package orders places orders atomically: the order row and every ticket
// commit together, or the whole request rolls back and leaves nothing behind.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/kafka"
	"github.com/oleksiirud/skyport/internal/repository"
	redisrepo "github.com/oleksiirud/skyport/internal/repository/redis"
)

// Item is one requested ticket inside an order.
type Item struct {
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

type Service struct {
	store   repository.OrderStore
	events  *kafka.Producer
	cache   *redisrepo.Cache
	idem    *redisrepo.IdempotencyStore
	limiter *redisrepo.SlidingWindowLimiter
	log     *slog.Logger
}

func New(
	store repository.OrderStore,
	events *kafka.Producer,
	cache *redisrepo.Cache,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:   store,
		events:  events,
		cache:   cache,
		idem:    idem,
		limiter: limiter,
		log:     log,
	}
}

// Place books every item for the user in one transaction. Each item is
// checked against its flight's seat layout and against already-persisted
// tickets; the first failing item aborts the whole order with an error that
// names the item's index. On success the committed order with its tickets is
// returned.
//
// idemKey, when non-empty, deduplicates retries of the same request: a replay
// returns the previously committed order instead of booking twice.
func (s *Service) Place(ctx context.Context, userID int64, items []Item, idemKey string) (*domain.OrderWithTickets, error) {
	const op = "service.orders.Place"

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyOrder)
	}

	if s.limiter != nil {
		ok, retry, err := s.limiter.Allow(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w: retry in %s", op, ErrRateLimited, retry)
		}
	}

	var ik string
	if s.idem != nil && idemKey != "" {
		ik = redisrepo.KeyIdemOrder(userID, idemKey)

		if cached, ok, err := s.idem.GetResult(ctx, ik); err == nil && ok {
			var out domain.OrderWithTickets
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return &out, nil
			}
		}

		acquired, err := s.idem.AcquireLock(ctx, ik, 30*time.Second)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !acquired {
			return nil, fmt.Errorf("%s: %w", op, ErrInFlight)
		}
	}

	var result domain.OrderWithTickets
	// Seat layouts are fetched at most once per distinct flight in the order.
	layouts := make(map[int64]domain.SeatLayout)

	err := s.store.InTx(ctx, func(ctx context.Context, tx repository.OrderTx) error {
		order, err := tx.InsertOrder(ctx, userID)
		if err != nil {
			return err
		}
		result.Order = *order

		for i, it := range items {
			layout, ok := layouts[it.FlightID]
			if !ok {
				plane, err := tx.AirplaneByFlight(ctx, it.FlightID)
				if err != nil {
					if errors.Is(err, repository.ErrNotFound) {
						return &FlightNotFoundError{Index: i, FlightID: it.FlightID}
					}
					return err
				}
				layout = plane.Layout
				layouts[it.FlightID] = layout
			}

			if err := domain.ValidateSeat(it.Row, it.Seat, layout); err != nil {
				var se *domain.SeatError
				if errors.As(err, &se) {
					return &ValidationError{Index: i, Violations: se.Violations}
				}
				return err
			}

			taken, err := tx.SeatTaken(ctx, it.FlightID, it.Row, it.Seat)
			if err != nil {
				return err
			}
			if taken {
				return &SeatTakenError{Index: i, FlightID: it.FlightID, Row: it.Row, Seat: it.Seat}
			}

			ticket, err := tx.InsertTicket(ctx, order.ID, it.FlightID, it.Row, it.Seat)
			if err != nil {
				// The unique constraint is the authoritative guard; a
				// concurrent booking that slipped past the pre-check
				// surfaces here.
				if errors.Is(err, repository.ErrSeatTaken) {
					return &SeatTakenError{Index: i, FlightID: it.FlightID, Row: it.Row, Seat: it.Seat}
				}
				return err
			}
			result.Tickets = append(result.Tickets, *ticket)
		}

		return nil
	})
	if err != nil {
		if ik != "" {
			_ = s.idem.Release(ctx, ik)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ik != "" {
		if payload, merr := json.Marshal(result); merr == nil {
			_ = s.idem.SaveResult(ctx, ik, string(payload))
		}
	}

	s.afterPlace(ctx, &result, items)

	return &result, nil
}

// afterPlace runs best-effort side effects once the order is committed:
// flight cache invalidation and the order-placed event. Failures are logged,
// never surfaced.
func (s *Service) afterPlace(ctx context.Context, o *domain.OrderWithTickets, items []Item) {
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.FlightID]; ok {
			continue
		}
		seen[it.FlightID] = struct{}{}

		if s.cache != nil {
			if err := s.cache.InvalidateFlight(ctx, it.FlightID); err != nil {
				s.log.Warn("flight cache invalidation failed",
					slog.Int64("flight_id", it.FlightID), slog.Any("error", err))
			}
		}
	}

	if err := s.events.Publish(ctx, kafka.TopicOrders,
		fmt.Sprintf("order-%d", o.Order.ID),
		kafka.OrderPlacedEvent{
			Type:     "order.placed",
			OrderID:  o.Order.ID,
			UserID:   o.Order.UserID,
			Tickets:  len(o.Tickets),
			PlacedAt: o.Order.CreatedAt,
		},
	); err != nil {
		s.log.Warn("order event publish failed",
			slog.Int64("order_id", o.Order.ID), slog.Any("error", err))
	}
}

// List returns the user's orders, newest first, with their tickets.
func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]domain.OrderWithTickets, error) {
	const op = "service.orders.List"

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	out, err := s.store.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Get returns one of the user's orders. Another user's order is
// indistinguishable from a missing one.
func (s *Service) Get(ctx context.Context, userID, orderID int64) (*domain.OrderWithTickets, error) {
	const op = "service.orders.Get"

	o, err := s.store.GetByUser(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}
