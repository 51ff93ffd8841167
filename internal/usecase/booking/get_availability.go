package booking

import (
	"context"

	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/models"
	"github.com/salonbook/salon-api/internal/schedule"
)

const DefaultSlotIntervalMinutes = 60

type GetAvailability struct {
	repo            domain.Repository
	intervalMinutes int
}

func NewGetAvailability(repo domain.Repository, intervalMinutes int) *GetAvailability {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotIntervalMinutes
	}
	return &GetAvailability{repo: repo, intervalMinutes: intervalMinutes}
}

// Execute resolves the effective window for the date, enumerates the
// slot grid and flags each slot against the required total duration,
// existing bookings and (for today) the clock. Missing barber or date
// yields an empty list, not an error. The result is advisory: the
// authoritative conflict check happens again at write time.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]schedule.Slot, error) {

	if in.BarberID == 0 || in.Date == "" {
		return []schedule.Slot{}, nil
	}

	ids := dedupeIDs(in.ServiceIDs)
	if len(ids) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	services, err := uc.repo.GetActiveServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	duration := 0
	for _, s := range services {
		duration += s.DurationMin
	}

	rules, err := uc.repo.ListAvailabilityRules(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	window := schedule.ResolveWindow(toScheduleRules(rules), in.Date)
	if window.Closed {
		return []schedule.Slot{}, nil
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.Interval, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, schedule.Interval{Start: b.StartTime, End: b.EndTime})
	}

	// Same-day queries filter out slots the clock already passed;
	// future dates never see the clock.
	now := ""
	if !in.Now.IsZero() && in.Now.Format(schedule.DateLayout) == in.Date {
		now = in.Now.Format(schedule.TimeLayout)
	}

	starts := schedule.GenerateSlots(window.Start, window.End, uc.intervalMinutes)
	return schedule.FilterSlots(starts, window.End, duration, busy, now), nil
}

func toScheduleRules(rules []models.AvailabilityRule) []schedule.Rule {
	out := make([]schedule.Rule, 0, len(rules))
	for _, r := range rules {
		sr := schedule.Rule{
			ID:          r.ID,
			Start:       r.StartTime,
			End:         r.EndTime,
			Description: r.Description,
		}
		switch {
		case r.SpecificDate != nil:
			sr.Kind = schedule.DateSpecific
			sr.Date = *r.SpecificDate
		case r.DayOfWeek != nil:
			sr.Kind = schedule.Recurring
			sr.DayOfWeek = *r.DayOfWeek
		default:
			// Row violates the discriminant invariant; skip it rather
			// than let it match every date.
			continue
		}
		out = append(out, sr)
	}
	return out
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
