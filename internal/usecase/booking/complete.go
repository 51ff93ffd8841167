package booking

import (
	"context"

	"github.com/salonbook/salon-api/internal/audit"
	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/models"
	"github.com/salonbook/salon-api/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit Auditor
	tz    string
}

func NewCompleteBooking(
	repo domain.Repository,
	auditor Auditor,
	tz string,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: auditor,
		tz:    tz,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
