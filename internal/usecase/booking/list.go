package booking

import (
	"context"

	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists a barber's bookings over an inclusive civil date
// range, cancelled ones included so the calendar shows them.
func (uc *ListBookings) Execute(
	ctx context.Context,
	barberID uint,
	fromDate string,
	toDate string,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForDateRange(ctx, barberID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		names := make([]string, 0, len(b.Services))
		for _, link := range b.Services {
			names = append(names, link.Service.Name)
		}

		out = append(out, dto.BookingListDTO{
			ID:               b.ID,
			BookingDate:      b.BookingDate,
			StartTime:        b.StartTime,
			EndTime:          b.EndTime,
			Status:           b.Status,
			CustomerName:     b.Customer.Name,
			ServiceNames:     names,
			TotalDurationMin: b.TotalDurationMin,
			TotalPrice:       b.TotalPrice,
		})
	}

	return out, nil
}
