package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oleksiirud/skyport/internal/repository"
)

// ticketsSeatConstraint guards (flight_id, row, seat); see migrations.
const ticketsSeatConstraint = "tickets_flight_id_row_seat_key"

func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return true
		}
	}

	return false
}

// wrapDBErr maps common DB errors to repository-level errors and wraps them
// with the provided operation name.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		switch pge.Code {
		// unique_violation
		case "23505":
			if pge.ConstraintName == ticketsSeatConstraint {
				return fmt.Errorf("%s: %w", op, repository.ErrSeatTaken)
			}
			return fmt.Errorf("%s: %w", op, repository.ErrConflict)
		// foreign_key_violation
		case "23503":
			return fmt.Errorf("%s: %w", op, repository.ErrBadReference)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
