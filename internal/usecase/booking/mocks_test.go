package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/salonbook/salon-api/internal/audit"
	"github.com/salonbook/salon-api/internal/models"
	"github.com/salonbook/salon-api/internal/notify"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetBarber(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockRepo) GetActiveServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockRepo) GetOrCreateCustomer(ctx context.Context, name, phone, email string) (*models.Customer, error) {
	args := m.Called(ctx, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockRepo) ListAvailabilityRules(ctx context.Context, barberID uint) ([]models.AvailabilityRule, error) {
	args := m.Called(ctx, barberID)
	return args.Get(0).([]models.AvailabilityRule), args.Error(1)
}

func (m *mockRepo) ListBookingsForDate(ctx context.Context, barberID uint, date string) ([]models.Booking, error) {
	args := m.Called(ctx, barberID, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) ListBookingsForDateRange(ctx context.Context, barberID uint, fromDate, toDate string) ([]models.Booking, error) {
	args := m.Called(ctx, barberID, fromDate, toDate)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockRepo) GetBookingForBarber(ctx context.Context, bookingID, barberID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, barberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking, serviceIDs []uint) error {
	return m.Called(ctx, b, serviceIDs).Error(0)
}

func (m *mockRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Dispatch(ev notify.Event) { m.Called(ev) }

type mockAuditor struct {
	mock.Mock
}

func (m *mockAuditor) Dispatch(ev audit.Event) { m.Called(ev) }
