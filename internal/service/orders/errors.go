package orders

import (
	"errors"
	"fmt"

	"github.com/oleksiirud/skyport/internal/domain"
)

var (
	ErrEmptyOrder  = errors.New("order has no tickets")
	ErrNotFound    = errors.New("order not found")
	ErrRateLimited = errors.New("too many order attempts")
	ErrInFlight    = errors.New("identical order is being processed")
)

// ValidationError reports that one requested ticket failed seat validation.
// Index is the position of the failing item in the request; Violations lists
// every out-of-range field of that item.
type ValidationError struct {
	Index      int
	Violations []domain.SeatViolation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ticket %d: %d seat violations", e.Index, len(e.Violations))
}

// SeatTakenError reports that one requested seat is already booked.
type SeatTakenError struct {
	Index    int
	FlightID int64
	Row      int
	Seat     int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("ticket %d: seat (%d, %d) on flight %d is already taken",
		e.Index, e.Row, e.Seat, e.FlightID)
}

// FlightNotFoundError reports that one requested ticket names a flight that
// does not exist.
type FlightNotFoundError struct {
	Index    int
	FlightID int64
}

func (e *FlightNotFoundError) Error() string {
	return fmt.Sprintf("ticket %d: flight %d not found", e.Index, e.FlightID)
}
