package booking

import (
	"context"

	"github.com/salonbook/salon-api/internal/audit"
	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/models"
	"github.com/salonbook/salon-api/internal/notify"
	"github.com/salonbook/salon-api/internal/schedule"
	"github.com/salonbook/salon-api/internal/timezone"
)

// ======================================================
// COLLABORATORS
// ======================================================

// Notifications and audit are fire-and-forget; the interfaces exist so
// tests can assert dispatches without redis or a database.

type Notifier interface {
	Dispatch(ev notify.Event)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceIDs []uint

	Date string // "YYYY-MM-DD"
	Time string // "HH:MM"
	Note string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo              domain.Repository
	notifier          Notifier
	audit             Auditor
	tz                string
	minAdvanceMinutes int
}

func NewCreateBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	tz string,
	minAdvanceMinutes int,
) *CreateBooking {
	return &CreateBooking{
		repo:              repo,
		notifier:          notifier,
		audit:             auditor,
		tz:                tz,
		minAdvanceMinutes: minAdvanceMinutes,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute is the booking writer. Totals come from freshly loaded
// services, never from the client, and the overlap check runs again
// inside the repository transaction immediately before the insert —
// the slot list the customer saw is advisory only.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Shape validation
	// --------------------------------------------------
	if in.BarberID == 0 || in.Date == "" || in.Time == "" || in.CustomerPhone == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if _, err := schedule.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	startMin, err := schedule.MinuteOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	ids := dedupeIDs(in.ServiceIDs)
	if len(ids) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// 2. Barber
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	// --------------------------------------------------
	// 3. Services, totals
	// --------------------------------------------------
	services, err := uc.repo.GetActiveServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	totalDuration := 0
	totalPrice := 0.0
	for _, s := range services {
		totalDuration += s.DurationMin
		totalPrice += s.Price
	}

	endMin := startMin + totalDuration
	if endMin > 24*60 {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}
	endTime := schedule.HHMM(endMin)

	// --------------------------------------------------
	// 4. Not in the past (salon-local clock)
	// --------------------------------------------------
	now := timezone.NowIn(uc.tz)
	today := now.Format(schedule.DateLayout)
	if in.Date < today {
		return nil, httperr.ErrBusiness(httperr.CodeTimeInPast)
	}
	if in.Date == today {
		nowMin, _ := schedule.MinuteOfDay(now.Format(schedule.TimeLayout))
		if startMin <= nowMin+uc.minAdvanceMinutes {
			return nil, httperr.ErrBusiness(httperr.CodeTimeInPast)
		}
	}

	// --------------------------------------------------
	// 5. Inside the effective window for that date
	// --------------------------------------------------
	rules, err := uc.repo.ListAvailabilityRules(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	window := schedule.ResolveWindow(toScheduleRules(rules), in.Date)
	if window.Closed || in.Time < window.Start || endTime > window.End {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	// --------------------------------------------------
	// 6. Customer (get or create by phone)
	// --------------------------------------------------
	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Commit: conflict re-check + booking + links
	// --------------------------------------------------
	b := &models.Booking{
		BarberID:         barber.ID,
		CustomerID:       customer.ID,
		BookingDate:      in.Date,
		StartTime:        in.Time,
		EndTime:          endTime,
		TotalDurationMin: totalDuration,
		TotalPrice:       totalPrice,
		Status:           string(domain.InitialStatus()),
		CustomerNote:     in.Note,
	}

	if err := uc.repo.CreateBooking(ctx, b, ids); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) || httperr.IsExclusionConflict(err) {
			uc.audit.Dispatch(audit.Event{
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"date":      in.Date,
					"start":     in.Time,
					"end":       endTime,
				},
			})
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 8. Best-effort side effects
	// --------------------------------------------------
	uc.notifier.Dispatch(notify.Event{
		Type:         notify.EventBookingCreated,
		BookingID:    b.ID,
		BarberID:     barber.ID,
		CustomerName: customer.Name,
		Date:         b.BookingDate,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
