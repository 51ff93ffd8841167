package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/salonbook/salon-api/internal/domain/booking"
	"github.com/salonbook/salon-api/internal/httperr"
	"github.com/salonbook/salon-api/internal/models"
	"github.com/salonbook/salon-api/internal/schedule"
)

func intp(v int) *int { return &v }

// futureDate returns a civil date one week out plus a recurring rule
// covering its weekday, so create inputs are valid regardless of when
// the tests run.
func futureDate() (string, models.AvailabilityRule) {
	d := time.Now().UTC().AddDate(0, 0, 7)
	rule := models.AvailabilityRule{
		ID:        1,
		BarberID:  1,
		DayOfWeek: intp(int(d.Weekday())),
		StartTime: "09:00",
		EndTime:   "18:00",
	}
	return d.Format(schedule.DateLayout), rule
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	date, rule := futureDate()

	barber := &models.User{ID: 1, Name: "A-Hao"}
	customer := &models.Customer{ID: 7, Name: "Mei", Phone: "0912345678"}
	services := []models.Service{
		{ID: 2, Name: "Cut", DurationMin: 30, Price: 500, Active: true},
		{ID: 3, Name: "Wash", DurationMin: 15, Price: 200, Active: true},
	}

	input := CreateBookingInput{
		BarberID:      1,
		CustomerName:  "Mei",
		CustomerPhone: "0912345678",
		ServiceIDs:    []uint{2, 3},
		Date:          date,
		Time:          "10:00",
		Note:          "first visit",
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		notifier := new(mockNotifier)
		auditor := new(mockAuditor)
		uc := NewCreateBooking(repo, notifier, auditor, "UTC", 0)

		repo.On("GetBarber", ctx, uint(1)).Return(barber, nil).Once()
		repo.On("GetActiveServicesByIDs", ctx, []uint{2, 3}).Return(services, nil).Once()
		repo.On("ListAvailabilityRules", ctx, uint(1)).Return([]models.AvailabilityRule{rule}, nil).Once()
		repo.On("GetOrCreateCustomer", ctx, "Mei", "0912345678", "").Return(customer, nil).Once()
		repo.On("CreateBooking", ctx, mock.Anything, []uint{2, 3}).Return(nil).Once()
		notifier.On("Dispatch", mock.Anything).Once()
		auditor.On("Dispatch", mock.Anything).Once()

		b, err := uc.Execute(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "10:00", b.StartTime)
		assert.Equal(t, "10:45", b.EndTime)
		assert.Equal(t, 45, b.TotalDurationMin)
		assert.Equal(t, 700.0, b.TotalPrice)
		assert.Equal(t, string(domain.StatusConfirmed), b.Status)
		assert.Equal(t, customer.ID, b.CustomerID)

		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
		auditor.AssertExpectations(t)
	})

	t.Run("SlotConflict", func(t *testing.T) {
		repo := new(mockRepo)
		notifier := new(mockNotifier)
		auditor := new(mockAuditor)
		uc := NewCreateBooking(repo, notifier, auditor, "UTC", 0)

		repo.On("GetBarber", ctx, uint(1)).Return(barber, nil).Once()
		repo.On("GetActiveServicesByIDs", ctx, []uint{2, 3}).Return(services, nil).Once()
		repo.On("ListAvailabilityRules", ctx, uint(1)).Return([]models.AvailabilityRule{rule}, nil).Once()
		repo.On("GetOrCreateCustomer", ctx, "Mei", "0912345678", "").Return(customer, nil).Once()
		repo.On("CreateBooking", ctx, mock.Anything, []uint{2, 3}).
			Return(httperr.ErrBusiness(httperr.CodeSlotConflict)).Once()
		auditor.On("Dispatch", mock.Anything).Once()

		_, err := uc.Execute(ctx, input)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))

		// losing the race leaves an audit trail but must not notify anyone
		notifier.AssertNotCalled(t, "Dispatch", mock.Anything)
		repo.AssertExpectations(t)
		auditor.AssertExpectations(t)
	})

	t.Run("UnknownService", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCreateBooking(repo, new(mockNotifier), new(mockAuditor), "UTC", 0)

		repo.On("GetBarber", ctx, uint(1)).Return(barber, nil).Once()
		// only one of the two ids resolves to an active service
		repo.On("GetActiveServicesByIDs", ctx, []uint{2, 3}).
			Return(services[:1], nil).Once()

		_, err := uc.Execute(ctx, input)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
	})

	t.Run("BarberNotFound", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCreateBooking(repo, new(mockNotifier), new(mockAuditor), "UTC", 0)

		repo.On("GetBarber", ctx, uint(1)).Return(nil, assert.AnError).Once()

		_, err := uc.Execute(ctx, input)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotFound))
	})

	t.Run("OutsideWorkingHours", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCreateBooking(repo, new(mockNotifier), new(mockAuditor), "UTC", 0)

		late := input
		late.Time = "17:45" // 45 minutes of service past the 18:00 close

		repo.On("GetBarber", ctx, uint(1)).Return(barber, nil).Once()
		repo.On("GetActiveServicesByIDs", ctx, []uint{2, 3}).Return(services, nil).Once()
		repo.On("ListAvailabilityRules", ctx, uint(1)).Return([]models.AvailabilityRule{rule}, nil).Once()

		_, err := uc.Execute(ctx, late)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))
	})

	t.Run("ClosedByException", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCreateBooking(repo, new(mockNotifier), new(mockAuditor), "UTC", 0)

		exception := models.AvailabilityRule{
			ID:           2,
			BarberID:     1,
			SpecificDate: &input.Date,
			StartTime:    schedule.ClosedTime,
			EndTime:      schedule.ClosedTime,
			IsException:  true,
		}

		repo.On("GetBarber", ctx, uint(1)).Return(barber, nil).Once()
		repo.On("GetActiveServicesByIDs", ctx, []uint{2, 3}).Return(services, nil).Once()
		repo.On("ListAvailabilityRules", ctx, uint(1)).
			Return([]models.AvailabilityRule{rule, exception}, nil).Once()

		_, err := uc.Execute(ctx, input)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))
	})

	t.Run("DateInPast", func(t *testing.T) {
		repo := new(mockRepo)
		uc := NewCreateBooking(repo, new(mockNotifier), new(mockAuditor), "UTC", 0)

		past := input
		past.Date = time.Now().UTC().AddDate(0, 0, -1).Format(schedule.DateLayout)

		repo.On("GetBarber", ctx, uint(1)).Return(barber, nil).Once()
		repo.On("GetActiveServicesByIDs", ctx, []uint{2, 3}).Return(services, nil).Once()

		_, err := uc.Execute(ctx, past)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeInPast))
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		uc := NewCreateBooking(new(mockRepo), new(mockNotifier), new(mockAuditor), "UTC", 0)

		bad := input
		bad.Time = "25:99"
		_, err := uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

		// unpadded times would be stored verbatim and break the
		// string-ordering the overlap checks rely on
		bad = input
		bad.Time = "9:05"
		_, err = uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

		bad = input
		bad.Date = "2026-3-3"
		_, err = uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

		bad = input
		bad.ServiceIDs = nil
		_, err = uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

		bad = input
		bad.CustomerPhone = ""
		_, err = uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})
}
