package booking

import "github.com/salonbook/salon-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Who ended a booking early.
const (
	CancelledByCustomer = "customer"
	CancelledByBarber   = "barber"
)

// ===============================
// Transitions
// ===============================

// Completed and cancelled are terminal; only a confirmed booking may
// move.

func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
