package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dlevchenko/airagency/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPgError translates postgres constraint violations into domain errors so
// a create that loses the check-then-act race still surfaces as the same
// conflict the pre-check would have reported.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case "flights_number_key":
			return &domain.DuplicateKeyError{Field: "number", Message: domain.MsgFlightNumberExists}
		case "customers_email_key":
			return &domain.DuplicateKeyError{Field: "email", Message: domain.MsgCustomerEmailExists}
		case "bookings_customer_id_flight_id_date_key":
			return &domain.DuplicateKeyError{Field: "flightId", Message: domain.MsgBookingExists}
		}
	case pgForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "bookings_customer_id_fkey":
			return domain.FieldErrors{"customerId": domain.MsgCustomerNotFound}
		case "bookings_flight_id_fkey":
			return domain.FieldErrors{"flightId": domain.MsgFlightNotFound}
		}
	}
	return err
}
