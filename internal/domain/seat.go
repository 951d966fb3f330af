package domain

import "fmt"

// SeatLayout is the rows-by-seats grid of bookable positions on an airplane.
// Both dimensions are fixed when the airplane is created.
type SeatLayout struct {
	Rows        int `json:"rows"`
	SeatsPerRow int `json:"seats_per_row"`
}

// SeatViolation reports a single field whose value falls outside the layout's
// valid range [1, Max].
type SeatViolation struct {
	Field string `json:"field"`
	Value int    `json:"value"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

func (v SeatViolation) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", v.Field, v.Value, v.Min, v.Max)
}

// SeatError aggregates every violated field of one (row, seat) pair so the
// caller gets a complete report, not just the first failure.
type SeatError struct {
	Violations []SeatViolation
}

func (e *SeatError) Error() string {
	if len(e.Violations) == 1 {
		return "invalid seat: " + e.Violations[0].Error()
	}
	return fmt.Sprintf("invalid seat: %d violations", len(e.Violations))
}

// ValidateSeat checks a (row, seat) pair against the layout. It is a pure
// function: both range checks run independently and all violations are
// collected into one SeatError.
func ValidateSeat(row, seat int, layout SeatLayout) error {
	var violations []SeatViolation

	if row < 1 || row > layout.Rows {
		violations = append(violations, SeatViolation{
			Field: "row",
			Value: row,
			Min:   1,
			Max:   layout.Rows,
		})
	}

	if seat < 1 || seat > layout.SeatsPerRow {
		violations = append(violations, SeatViolation{
			Field: "seat",
			Value: seat,
			Min:   1,
			Max:   layout.SeatsPerRow,
		})
	}

	if len(violations) > 0 {
		return &SeatError{Violations: violations}
	}

	return nil
}
