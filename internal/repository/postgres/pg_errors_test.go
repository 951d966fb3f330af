package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oleksiirud/skyport/internal/repository"
)

func TestWrapDBErr(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows", pgx.ErrNoRows, repository.ErrNotFound},
		{
			"seat constraint",
			&pgconn.PgError{Code: "23505", ConstraintName: ticketsSeatConstraint},
			repository.ErrSeatTaken,
		},
		{
			"other unique violation",
			&pgconn.PgError{Code: "23505", ConstraintName: "airports_name_city_id_key"},
			repository.ErrConflict,
		},
		{
			"airplane name taken",
			&pgconn.PgError{Code: "23505", ConstraintName: "airplanes_name_key"},
			repository.ErrConflict,
		},
		{
			"foreign key violation",
			&pgconn.PgError{Code: "23503", ConstraintName: "cities_country_id_fkey"},
			repository.ErrBadReference,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapDBErr("op", tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestWrapDBErrKeepsUnknownErrors(t *testing.T) {
	plain := errors.New("connection reset")
	got := wrapDBErr("op", plain)

	assert.ErrorIs(t, got, plain)
	assert.NotErrorIs(t, got, repository.ErrConflict)
	assert.NotErrorIs(t, got, repository.ErrBadReference)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("nope")))
}
