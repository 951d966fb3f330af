package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeat_AllInRange(t *testing.T) {
	layout := SeatLayout{Rows: 2, SeatsPerRow: 3}

	for row := 1; row <= layout.Rows; row++ {
		for seat := 1; seat <= layout.SeatsPerRow; seat++ {
			assert.NoError(t, ValidateSeat(row, seat, layout), "row=%d seat=%d", row, seat)
		}
	}
}

func TestValidateSeat_RowOutOfRange(t *testing.T) {
	layout := SeatLayout{Rows: 2, SeatsPerRow: 3}

	for _, row := range []int{0, -1, 3, 5} {
		err := ValidateSeat(row, 1, layout)
		require.Error(t, err, "row=%d", row)

		var se *SeatError
		require.True(t, errors.As(err, &se))
		require.Len(t, se.Violations, 1)
		assert.Equal(t, "row", se.Violations[0].Field)
		assert.Equal(t, row, se.Violations[0].Value)
		assert.Equal(t, 1, se.Violations[0].Min)
		assert.Equal(t, 2, se.Violations[0].Max)
	}
}

func TestValidateSeat_SeatOutOfRange(t *testing.T) {
	layout := SeatLayout{Rows: 2, SeatsPerRow: 3}

	err := ValidateSeat(1, 4, layout)
	require.Error(t, err)

	var se *SeatError
	require.True(t, errors.As(err, &se))
	require.Len(t, se.Violations, 1)
	assert.Equal(t, "seat", se.Violations[0].Field)
	assert.Equal(t, 4, se.Violations[0].Value)
	assert.Equal(t, 3, se.Violations[0].Max)
}

func TestValidateSeat_BothFieldsReported(t *testing.T) {
	layout := SeatLayout{Rows: 2, SeatsPerRow: 3}

	err := ValidateSeat(0, 9, layout)
	require.Error(t, err)

	var se *SeatError
	require.True(t, errors.As(err, &se))
	require.Len(t, se.Violations, 2)

	fields := []string{se.Violations[0].Field, se.Violations[1].Field}
	assert.Contains(t, fields, "row")
	assert.Contains(t, fields, "seat")
}

func TestAirplaneCapacity(t *testing.T) {
	a := Airplane{Layout: SeatLayout{Rows: 2, SeatsPerRow: 3}}
	assert.Equal(t, 6, a.Capacity())
}

func TestCrewFullName(t *testing.T) {
	c := Crew{FirstName: "Test", LastName: "Crew"}
	assert.Equal(t, "Test Crew", c.FullName())
}
