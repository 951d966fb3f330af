package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"defaults", 0, 0, defaultLimit, 0},
		{"negative limit", -5, 0, defaultLimit, 0},
		{"negative offset", 10, -1, 10, 0},
		{"over max", 10_000, 20, maxLimit, 20},
		{"in range", 25, 50, 25, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := clampPage(tc.limit, tc.offset)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestMapRepoErr(t *testing.T) {
	assert.ErrorIs(t, mapRepoErr("op", repository.ErrNotFound), ErrNotFound)
	assert.ErrorIs(t, mapRepoErr("op", repository.ErrConflict), ErrConflict)
	assert.ErrorIs(t, mapRepoErr("op", repository.ErrBadReference), ErrInvalidInput)

	plain := errors.New("connection reset")
	assert.ErrorIs(t, mapRepoErr("op", plain), plain)
}

// Validation failures must be rejected before the store is consulted; a nil
// store guarantees the test panics if that contract breaks.

func TestCreateCountryBlankNameRejected(t *testing.T) {
	svc := New(nil)

	_, err := svc.CreateCountry(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateCityRequiresCountry(t *testing.T) {
	svc := New(nil)

	_, err := svc.CreateCity(context.Background(), "Lviv", 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAirportRequiresCity(t *testing.T) {
	svc := New(nil)

	_, err := svc.CreateAirport(context.Background(), "Danylo Halytskyi", -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAirplaneRequiresPositiveLayout(t *testing.T) {
	svc := New(nil)

	for _, layout := range []domain.SeatLayout{
		{Rows: 0, SeatsPerRow: 6},
		{Rows: 20, SeatsPerRow: 0},
		{Rows: -1, SeatsPerRow: -1},
	} {
		_, err := svc.CreateAirplane(context.Background(), domain.Airplane{
			Name:   "AN-225",
			TypeID: 1,
			Layout: layout,
		})
		require.ErrorIs(t, err, ErrInvalidInput, "layout=%+v", layout)
	}
}

func TestCreateCrewRequiresBothNames(t *testing.T) {
	svc := New(nil)

	_, err := svc.CreateCrew(context.Background(), "Olena", "  ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCrew(context.Background(), "", "Shevchenko")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAirplaneTypeBlankNameRejected(t *testing.T) {
	svc := New(nil)

	_, err := svc.UpdateAirplaneType(context.Background(), 3, "")
	require.ErrorIs(t, err, ErrInvalidInput)
}
