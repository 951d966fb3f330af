// Package repository declares the storage capability set consumed by the
// services, plus the sentinel errors every implementation maps its backend
// failures onto. Postgres implementations live in repository/postgres.
package repository

import (
	"context"

	"github.com/oleksiirud/skyport/internal/domain"
)

// CatalogStore covers the reference entities: countries, cities, airports,
// airplane types, airplanes and crews. Each entity gets explicit typed
// methods; list filters are case-insensitive substring matches.
type CatalogStore interface {
	ListCountries(ctx context.Context, nameFilter string, limit, offset int) ([]domain.Country, error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	CreateCountry(ctx context.Context, name string) (*domain.Country, error)
	UpdateCountry(ctx context.Context, id int64, name string) (*domain.Country, error)
	DeleteCountry(ctx context.Context, id int64) error

	ListCities(ctx context.Context, countryFilter string, limit, offset int) ([]domain.CityDetail, error)
	GetCity(ctx context.Context, id int64) (*domain.CityDetail, error)
	CreateCity(ctx context.Context, name string, countryID int64) (*domain.City, error)
	UpdateCity(ctx context.Context, id int64, name string, countryID int64) (*domain.City, error)
	DeleteCity(ctx context.Context, id int64) error

	ListAirports(ctx context.Context, cityFilter string, limit, offset int) ([]domain.AirportDetail, error)
	GetAirport(ctx context.Context, id int64) (*domain.AirportDetail, error)
	CreateAirport(ctx context.Context, name string, cityID int64) (*domain.Airport, error)
	UpdateAirport(ctx context.Context, id int64, name string, cityID int64) (*domain.Airport, error)
	DeleteAirport(ctx context.Context, id int64) error

	ListAirplaneTypes(ctx context.Context, nameFilter string, limit, offset int) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error)
	UpdateAirplaneType(ctx context.Context, id int64, name string) (*domain.AirplaneType, error)
	DeleteAirplaneType(ctx context.Context, id int64) error

	ListAirplanes(ctx context.Context, nameFilter string, limit, offset int) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, a domain.Airplane) (*domain.Airplane, error)
	UpdateAirplane(ctx context.Context, id int64, name string, typeID int64) (*domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id int64) error

	ListCrews(ctx context.Context, fullNameFilter string, limit, offset int) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, firstName, lastName string) (*domain.Crew, error)
	UpdateCrew(ctx context.Context, id int64, firstName, lastName string) (*domain.Crew, error)
	DeleteCrew(ctx context.Context, id int64) error
}

// RouteStore persists routes. Distance is resolved by the service before the
// route reaches the store; the store never recomputes it.
type RouteStore interface {
	ListRoutes(ctx context.Context, sourceFilter, destinationFilter string, limit, offset int) ([]domain.RouteDetail, error)
	GetRoute(ctx context.Context, id int64) (*domain.RouteDetail, error)
	CreateRoute(ctx context.Context, sourceID, destinationID int64, distanceKM int) (*domain.Route, error)

	// RoutePlaceNames returns the "city, country" strings of both endpoints
	// for the distance resolver.
	RoutePlaceNames(ctx context.Context, sourceID, destinationID int64) (source, destination string, err error)
}

type FlightStore interface {
	ListFlights(ctx context.Context, limit, offset int) ([]domain.FlightDetail, error)
	GetFlight(ctx context.Context, id int64) (*domain.FlightDetail, error)
	CreateFlight(ctx context.Context, f domain.Flight) (*domain.Flight, error)
	UpdateFlight(ctx context.Context, f domain.Flight) (*domain.Flight, error)
	DeleteFlight(ctx context.Context, id int64) error

	// FlightSeatMap returns the airplane layout of the flight together with
	// every already-booked seat.
	FlightSeatMap(ctx context.Context, flightID int64) (*domain.FlightSeatMap, error)
}

// OrderTx is the handle passed to the order-placement closure. Every call on
// it runs inside the same database transaction, so the seat pre-check and the
// ticket insert observe one consistent snapshot.
type OrderTx interface {
	// AirplaneByFlight resolves flight -> airplane -> seat layout.
	AirplaneByFlight(ctx context.Context, flightID int64) (*domain.Airplane, error)

	// SeatTaken reports whether a persisted ticket already occupies
	// (flightID, row, seat). This is the friendly pre-check; the unique
	// constraint on the tickets table remains the authoritative guard.
	SeatTaken(ctx context.Context, flightID int64, row, seat int) (bool, error)

	InsertOrder(ctx context.Context, userID int64) (*domain.Order, error)

	// InsertTicket fails with ErrSeatTaken when the storage-level unique
	// constraint on (flight_id, row, seat) is violated.
	InsertTicket(ctx context.Context, orderID, flightID int64, row, seat int) (*domain.Ticket, error)
}

// OrderStore runs the atomic order-placement transaction and serves order
// reads. InTx commits only when fn returns nil; any error rolls the whole
// transaction back, leaving no order or ticket rows behind.
type OrderStore interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx OrderTx) error) error

	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.OrderWithTickets, error)
	GetByUser(ctx context.Context, userID, orderID int64) (*domain.OrderWithTickets, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string, isStaff bool) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id int64) (*domain.User, error)
}
