package booking

import (
	"context"

	"github.com/salonbook/salon-api/internal/audit"
	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/models"
	"github.com/salonbook/salon-api/internal/notify"
	"github.com/salonbook/salon-api/internal/timezone"
)

type CancelBookingInput struct {
	BookingID uint
	By        string // domain.CancelledByBarber or domain.CancelledByCustomer
	Reason    string

	BarberID      uint   // barber path: booking must belong to this barber
	CustomerPhone string // customer path: phone must match the booking's customer
}

type CancelBooking struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	tz       string
}

func NewCancelBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
		tz:       tz,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*models.Booking, error) {

	var (
		b   *models.Booking
		err error
	)

	switch in.By {
	case domain.CancelledByBarber:
		b, err = uc.repo.GetBookingForBarber(ctx, in.BookingID, in.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}

	case domain.CancelledByCustomer:
		b, err = uc.repo.GetBooking(ctx, in.BookingID)
		if err != nil || b.Customer.Phone == "" || b.Customer.Phone != in.CustomerPhone {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}

	default:
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(b, in.By, in.Reason, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:      notify.EventBookingCancelled,
		BookingID: b.ID,
		BarberID:  b.BarberID,
		Date:      b.BookingDate,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"by": in.By, "reason": in.Reason},
	})

	return b, nil
}
