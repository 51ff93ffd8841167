package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/models"
)

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID:          5,
		BarberID:    1,
		CustomerID:  7,
		BookingDate: "2026-03-03",
		StartTime:   "10:00",
		EndTime:     "10:30",
		Status:      string(domain.StatusConfirmed),
		Customer:    models.Customer{ID: 7, Name: "Mei", Phone: "0912345678"},
	}
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("ByBarber", func(t *testing.T) {
		repo := new(mockRepo)
		notifier := new(mockNotifier)
		auditor := new(mockAuditor)
		uc := NewCancelBooking(repo, notifier, auditor, "UTC")

		b := confirmedBooking()
		repo.On("GetBookingForBarber", ctx, uint(5), uint(1)).Return(b, nil).Once()
		repo.On("UpdateBooking", ctx, b).Return(nil).Once()
		notifier.On("Dispatch", mock.Anything).Once()
		auditor.On("Dispatch", mock.Anything).Once()

		got, err := uc.Execute(ctx, CancelBookingInput{
			BookingID: 5,
			By:        domain.CancelledByBarber,
			Reason:    "sick day",
			BarberID:  1,
		})
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), got.Status)
		assert.Equal(t, domain.CancelledByBarber, got.CancelledBy)
		assert.Equal(t, "sick day", got.CancellationReason)
		assert.NotNil(t, got.CancelledAt)
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("ByCustomer", func(t *testing.T) {
		repo := new(mockRepo)
		notifier := new(mockNotifier)
		auditor := new(mockAuditor)
		uc := NewCancelBooking(repo, notifier, auditor, "UTC")

		b := confirmedBooking()
		repo.On("GetBooking", ctx, uint(5)).Return(b, nil).Once()
		repo.On("UpdateBooking", ctx, b).Return(nil).Once()
		notifier.On("Dispatch", mock.Anything).Once()
		auditor.On("Dispatch", mock.Anything).Once()

		got, err := uc.Execute(ctx, CancelBookingInput{
			BookingID:     5,
			By:            domain.CancelledByCustomer,
			CustomerPhone: "0912345678",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.CancelledByCustomer, got.CancelledBy)
	})

	t.Run("CustomerPhoneMismatch", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCancelBooking(repo, new(mockNotifier), new(mockAuditor), "UTC")

		repo.On("GetBooking", ctx, uint(5)).Return(confirmedBooking(), nil).Once()

		_, err := uc.Execute(ctx, CancelBookingInput{
			BookingID:     5,
			By:            domain.CancelledByCustomer,
			CustomerPhone: "0900000000",
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))
		repo.AssertNotCalled(t, "UpdateBooking", ctx, mock.Anything)
	})

	t.Run("WrongBarber", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCancelBooking(repo, new(mockNotifier), new(mockAuditor), "UTC")

		repo.On("GetBookingForBarber", ctx, uint(5), uint(2)).Return(nil, assert.AnError).Once()

		_, err := uc.Execute(ctx, CancelBookingInput{
			BookingID: 5,
			By:        domain.CancelledByBarber,
			BarberID:  2,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCancelBooking(repo, new(mockNotifier), new(mockAuditor), "UTC")

		b := confirmedBooking()
		b.Status = string(domain.StatusCancelled)
		repo.On("GetBookingForBarber", ctx, uint(5), uint(1)).Return(b, nil).Once()

		_, err := uc.Execute(ctx, CancelBookingInput{
			BookingID: 5,
			By:        domain.CancelledByBarber,
			BarberID:  1,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})

	t.Run("UnknownActor", func(t *testing.T) {
		uc := NewCancelBooking(new(mockRepo), new(mockNotifier), new(mockAuditor), "UTC")

		_, err := uc.Execute(ctx, CancelBookingInput{BookingID: 5, By: "stranger"})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})
}

func TestCompleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		auditor := new(mockAuditor)
		uc := NewCompleteBooking(repo, auditor, "UTC")

		b := confirmedBooking()
		repo.On("GetBookingForBarber", ctx, uint(5), uint(1)).Return(b, nil).Once()
		repo.On("UpdateBooking", ctx, b).Return(nil).Once()
		auditor.On("Dispatch", mock.Anything).Once()

		got, err := uc.Execute(ctx, 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), got.Status)
		assert.NotNil(t, got.CompletedAt)
		auditor.AssertExpectations(t)
	})

	t.Run("CancelledCannotComplete", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCompleteBooking(repo, new(mockAuditor), "UTC")

		b := confirmedBooking()
		b.Status = string(domain.StatusCancelled)
		repo.On("GetBookingForBarber", ctx, uint(5), uint(1)).Return(b, nil).Once()

		_, err := uc.Execute(ctx, 1, 5)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})
}
