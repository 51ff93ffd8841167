package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business error codes used across use cases and handlers.
const (
	CodeValidation      = "validation_failed"
	CodeSlotConflict    = "slot_conflict"
	CodeBarberNotFound  = "barber_not_found"
	CodeServiceNotFound = "service_not_found"
	CodeBookingNotFound = "booking_not_found"
	CodeInvalidState    = "invalid_state"
	CodeOutsideHours    = "outside_working_hours"
	CodeTimeInPast      = "time_in_past"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsExclusionConflict reports whether err is a postgres
// exclusion-constraint violation (SQLSTATE 23P01). The bookings table
// carries an exclusion constraint on overlapping time ranges, so this
// is the store-side form of a slot conflict.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
