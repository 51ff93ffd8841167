package booking

import (
	"context"

	"github.com/salonbook/salon-api/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Services --------
	ListActiveServices(
		ctx context.Context,
	) ([]models.Service, error)

	GetActiveServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Availability rules --------
	ListAvailabilityRules(
		ctx context.Context,
		barberID uint,
	) ([]models.AvailabilityRule, error)

	// -------- Bookings (read) --------
	ListBookingsForDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsForDateRange(
		ctx context.Context,
		barberID uint,
		fromDate string,
		toDate string,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForBarber(
		ctx context.Context,
		bookingID uint,
		barberID uint,
	) (*models.Booking, error)

	// -------- Bookings (write) --------

	// CreateBooking re-checks for overlapping non-cancelled bookings
	// and writes the booking row plus its service links in a single
	// transaction. Returns a slot_conflict business error when the
	// interval is already taken.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		serviceIDs []uint,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
