// Package catalog manages the reference entities: countries, cities,
// airports, airplane types, airplanes and crews.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type Service struct {
	store repository.CatalogStore
}

func New(store repository.CatalogStore) *Service {
	return &Service{store: store}
}

// clampPage normalizes limit/offset the same way for every list endpoint.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func mapRepoErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case errors.Is(err, repository.ErrBadReference):
		return fmt.Errorf("%s: %w", op, ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// --- countries ---

func (s *Service) ListCountries(ctx context.Context, name string, limit, offset int) ([]domain.Country, error) {
	const op = "service.catalog.ListCountries"

	limit, offset = clampPage(limit, offset)
	out, err := s.store.ListCountries(ctx, name, limit, offset)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return out, nil
}

func (s *Service) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	const op = "service.catalog.GetCountry"

	c, err := s.store.GetCountry(ctx, id)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) CreateCountry(ctx context.Context, name string) (*domain.Country, error) {
	const op = "service.catalog.CreateCountry"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: name: %w", op, ErrInvalidInput)
	}

	c, err := s.store.CreateCountry(ctx, name)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) UpdateCountry(ctx context.Context, id int64, name string) (*domain.Country, error) {
	const op = "service.catalog.UpdateCountry"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: name: %w", op, ErrInvalidInput)
	}

	c, err := s.store.UpdateCountry(ctx, id, name)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) DeleteCountry(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteCountry"

	if err := s.store.DeleteCountry(ctx, id); err != nil {
		return mapRepoErr(op, err)
	}
	return nil
}

// --- cities ---

func (s *Service) ListCities(ctx context.Context, country string, limit, offset int) ([]domain.CityDetail, error) {
	const op = "service.catalog.ListCities"

	limit, offset = clampPage(limit, offset)
	out, err := s.store.ListCities(ctx, country, limit, offset)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return out, nil
}

func (s *Service) GetCity(ctx context.Context, id int64) (*domain.CityDetail, error) {
	const op = "service.catalog.GetCity"

	c, err := s.store.GetCity(ctx, id)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) CreateCity(ctx context.Context, name string, countryID int64) (*domain.City, error) {
	const op = "service.catalog.CreateCity"

	name = strings.TrimSpace(name)
	if name == "" || countryID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	c, err := s.store.CreateCity(ctx, name, countryID)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) UpdateCity(ctx context.Context, id int64, name string, countryID int64) (*domain.City, error) {
	const op = "service.catalog.UpdateCity"

	name = strings.TrimSpace(name)
	if name == "" || countryID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	c, err := s.store.UpdateCity(ctx, id, name, countryID)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) DeleteCity(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteCity"

	if err := s.store.DeleteCity(ctx, id); err != nil {
		return mapRepoErr(op, err)
	}
	return nil
}

// --- airports ---

func (s *Service) ListAirports(ctx context.Context, city string, limit, offset int) ([]domain.AirportDetail, error) {
	const op = "service.catalog.ListAirports"

	limit, offset = clampPage(limit, offset)
	out, err := s.store.ListAirports(ctx, city, limit, offset)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return out, nil
}

func (s *Service) GetAirport(ctx context.Context, id int64) (*domain.AirportDetail, error) {
	const op = "service.catalog.GetAirport"

	a, err := s.store.GetAirport(ctx, id)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return a, nil
}

func (s *Service) CreateAirport(ctx context.Context, name string, cityID int64) (*domain.Airport, error) {
	const op = "service.catalog.CreateAirport"

	name = strings.TrimSpace(name)
	if name == "" || cityID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	a, err := s.store.CreateAirport(ctx, name, cityID)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return a, nil
}

func (s *Service) UpdateAirport(ctx context.Context, id int64, name string, cityID int64) (*domain.Airport, error) {
	const op = "service.catalog.UpdateAirport"

	name = strings.TrimSpace(name)
	if name == "" || cityID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	a, err := s.store.UpdateAirport(ctx, id, name, cityID)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return a, nil
}

func (s *Service) DeleteAirport(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteAirport"

	if err := s.store.DeleteAirport(ctx, id); err != nil {
		return mapRepoErr(op, err)
	}
	return nil
}

// --- airplane types ---

func (s *Service) ListAirplaneTypes(ctx context.Context, name string, limit, offset int) ([]domain.AirplaneType, error) {
	const op = "service.catalog.ListAirplaneTypes"

	limit, offset = clampPage(limit, offset)
	out, err := s.store.ListAirplaneTypes(ctx, name, limit, offset)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return out, nil
}

func (s *Service) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	const op = "service.catalog.GetAirplaneType"

	t, err := s.store.GetAirplaneType(ctx, id)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return t, nil
}

func (s *Service) CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error) {
	const op = "service.catalog.CreateAirplaneType"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: name: %w", op, ErrInvalidInput)
	}

	t, err := s.store.CreateAirplaneType(ctx, name)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return t, nil
}

func (s *Service) UpdateAirplaneType(ctx context.Context, id int64, name string) (*domain.AirplaneType, error) {
	const op = "service.catalog.UpdateAirplaneType"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: name: %w", op, ErrInvalidInput)
	}

	t, err := s.store.UpdateAirplaneType(ctx, id, name)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return t, nil
}

func (s *Service) DeleteAirplaneType(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteAirplaneType"

	if err := s.store.DeleteAirplaneType(ctx, id); err != nil {
		return mapRepoErr(op, err)
	}
	return nil
}

// --- airplanes ---

func (s *Service) ListAirplanes(ctx context.Context, name string, limit, offset int) ([]domain.Airplane, error) {
	const op = "service.catalog.ListAirplanes"

	limit, offset = clampPage(limit, offset)
	out, err := s.store.ListAirplanes(ctx, name, limit, offset)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return out, nil
}

func (s *Service) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	const op = "service.catalog.GetAirplane"

	a, err := s.store.GetAirplane(ctx, id)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return a, nil
}

// CreateAirplane requires a positive seat layout: the layout defines the
// bookable grid and is immutable after creation.
func (s *Service) CreateAirplane(ctx context.Context, a domain.Airplane) (*domain.Airplane, error) {
	const op = "service.catalog.CreateAirplane"

	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" || a.TypeID <= 0 ||
		a.Layout.Rows <= 0 || a.Layout.SeatsPerRow <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	created, err := s.store.CreateAirplane(ctx, a)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return created, nil
}

// UpdateAirplane changes name and type only. The seat layout is frozen
// because persisted tickets reference positions in it.
func (s *Service) UpdateAirplane(ctx context.Context, id int64, name string, typeID int64) (*domain.Airplane, error) {
	const op = "service.catalog.UpdateAirplane"

	name = strings.TrimSpace(name)
	if name == "" || typeID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	a, err := s.store.UpdateAirplane(ctx, id, name, typeID)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return a, nil
}

func (s *Service) DeleteAirplane(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteAirplane"

	if err := s.store.DeleteAirplane(ctx, id); err != nil {
		return mapRepoErr(op, err)
	}
	return nil
}

// --- crews ---

func (s *Service) ListCrews(ctx context.Context, fullName string, limit, offset int) ([]domain.Crew, error) {
	const op = "service.catalog.ListCrews"

	limit, offset = clampPage(limit, offset)
	out, err := s.store.ListCrews(ctx, fullName, limit, offset)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return out, nil
}

func (s *Service) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	const op = "service.catalog.GetCrew"

	c, err := s.store.GetCrew(ctx, id)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) CreateCrew(ctx context.Context, firstName, lastName string) (*domain.Crew, error) {
	const op = "service.catalog.CreateCrew"

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	c, err := s.store.CreateCrew(ctx, firstName, lastName)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) UpdateCrew(ctx context.Context, id int64, firstName, lastName string) (*domain.Crew, error) {
	const op = "service.catalog.UpdateCrew"

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	c, err := s.store.UpdateCrew(ctx, id, firstName, lastName)
	if err != nil {
		return nil, mapRepoErr(op, err)
	}
	return c, nil
}

func (s *Service) DeleteCrew(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteCrew"

	if err := s.store.DeleteCrew(ctx, id); err != nil {
		return mapRepoErr(op, err)
	}
	return nil
}
