package httpgin

import (
	"time"

	"github.com/oleksiirud/skyport/internal/domain"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"user"`
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

type CityRequest struct {
	Name      string `json:"name" binding:"required"`
	CountryID int64  `json:"country_id" binding:"required,gt=0"`
}

type AirportRequest struct {
	Name   string `json:"name" binding:"required"`
	CityID int64  `json:"city_id" binding:"required,gt=0"`
}

type CreateAirplaneRequest struct {
	Name        string `json:"name" binding:"required"`
	TypeID      int64  `json:"type_id" binding:"required,gt=0"`
	Rows        int    `json:"rows" binding:"required,gt=0"`
	SeatsPerRow int    `json:"seats_per_row" binding:"required,gt=0"`
}

type UpdateAirplaneRequest struct {
	Name   string `json:"name" binding:"required"`
	TypeID int64  `json:"type_id" binding:"required,gt=0"`
}

type CrewRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type CreateRouteRequest struct {
	SourceID      int64 `json:"source_id" binding:"required,gt=0"`
	DestinationID int64 `json:"destination_id" binding:"required,gt=0"`
	// DistanceKM is optional: when omitted the distance is resolved from the
	// endpoints' locations.
	DistanceKM *int `json:"distance_km"`
}

type FlightRequest struct {
	RouteID       int64   `json:"route_id" binding:"required,gt=0"`
	AirplaneID    int64   `json:"airplane_id" binding:"required,gt=0"`
	CrewIDs       []int64 `json:"crew_ids"`
	DepartureTime string  `json:"departure_time" binding:"required"`
	ArrivalTime   string  `json:"arrival_time" binding:"required"`
}

type TicketInput struct {
	FlightID int64 `json:"flight_id" binding:"required,gt=0"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

// Tickets is deliberately not required at the binding layer: an empty order
// is rejected by the orders service with its own message and status.
type PlaceOrderRequest struct {
	Tickets []TicketInput `json:"tickets" binding:"dive"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	// Index is set when a specific order item caused the failure.
	Index *int `json:"index,omitempty"`
	// Violations lists out-of-range seat fields for validation failures.
	Violations []domain.SeatViolation `json:"violations,omitempty"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
