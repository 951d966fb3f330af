package domain

import "time"

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type City struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
}

// CityDetail carries the country name alongside the city row for read
// responses.
type CityDetail struct {
	City
	CountryName string `json:"country"`
}

type Airport struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"city_id"`
}

type AirportDetail struct {
	Airport
	CityName    string `json:"city"`
	CountryName string `json:"country"`
}

type Route struct {
	ID            int64 `json:"id"`
	SourceID      int64 `json:"source_id"`
	DestinationID int64 `json:"destination_id"`
	DistanceKM    int   `json:"distance_km"`
}

type RouteDetail struct {
	Route
	Source      AirportDetail `json:"source"`
	Destination AirportDetail `json:"destination"`
}

type AirplaneType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Airplane struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	TypeID int64      `json:"type_id"`
	Layout SeatLayout `json:"layout"`
}

// Capacity is derived from the layout and never stored.
func (a Airplane) Capacity() int {
	return a.Layout.Rows * a.Layout.SeatsPerRow
}

type Crew struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Flight struct {
	ID            int64     `json:"id"`
	RouteID       int64     `json:"route_id"`
	AirplaneID    int64     `json:"airplane_id"`
	CrewIDs       []int64   `json:"crew_ids"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type FlightDetail struct {
	Flight
	Route    RouteDetail `json:"route"`
	Airplane Airplane    `json:"airplane"`
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	CreatedAt    time.Time `json:"created_at"`
}

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Ticket struct {
	ID       int64 `json:"id"`
	OrderID  int64 `json:"order_id"`
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

type OrderWithTickets struct {
	Order   Order    `json:"order"`
	Tickets []Ticket `json:"tickets"`
}

// TakenSeat is a booked position on a flight, used by the seat-map view.
type TakenSeat struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightSeatMap struct {
	FlightID int64       `json:"flight_id"`
	Layout   SeatLayout  `json:"layout"`
	Taken    []TakenSeat `json:"taken"`
}
