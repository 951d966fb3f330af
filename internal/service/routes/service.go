// Package routes manages routes between airports and fills in the route
// distance when the caller does not provide one.
package routes

import (
	"context"
	"errors"
	"fmt"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

// DistanceResolver computes the distance in whole kilometers between two
// named places, e.g. "Kyiv, Ukraine" and "Warsaw, Poland".
type DistanceResolver interface {
	DistanceKM(ctx context.Context, from, to string) (int, error)
}

type Service struct {
	store    repository.RouteStore
	resolver DistanceResolver
}

func New(store repository.RouteStore, resolver DistanceResolver) *Service {
	return &Service{store: store, resolver: resolver}
}

func (s *Service) List(ctx context.Context, sourceFilter, destinationFilter string, limit, offset int) ([]domain.RouteDetail, error) {
	const op = "service.routes.List"

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	out, err := s.store.ListRoutes(ctx, sourceFilter, destinationFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	const op = "service.routes.Get"

	r, err := s.store.GetRoute(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// Create persists a route between two airports. When distanceKM is non-nil
// it is stored as-is and the resolver is never consulted. When it is nil the
// distance is resolved exactly once from the endpoints' place names; if
// resolution fails the route is not created.
func (s *Service) Create(ctx context.Context, sourceID, destinationID int64, distanceKM *int) (*domain.Route, error) {
	const op = "service.routes.Create"

	if sourceID <= 0 || destinationID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}
	if distanceKM != nil && *distanceKM < 0 {
		return nil, fmt.Errorf("%s: distance: %w", op, ErrInvalidInput)
	}

	var distance int
	if distanceKM != nil {
		distance = *distanceKM
	} else {
		source, destination, err := s.store.RoutePlaceNames(ctx, sourceID, destinationID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrAirportNotFound)
			}
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		distance, err = s.resolver.DistanceKM(ctx, source, destination)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrDistanceUnavailable, err)
		}
	}

	r, err := s.store.CreateRoute(ctx, sourceID, destinationID, distance)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrBadReference) {
			return nil, fmt.Errorf("%s: %w", op, ErrAirportNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}
