package reservation

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*models.Restaurant)
	return r, args.Error(1)
}

func (m *mockRepo) GetRestaurantBySlug(ctx context.Context, slug string) (*models.Restaurant, error) {
	args := m.Called(ctx, slug)
	r, _ := args.Get(0).(*models.Restaurant)
	return r, args.Error(1)
}

func (m *mockRepo) GetTimeSlotConfig(ctx context.Context, restaurantID uint) (*models.TimeSlotConfig, error) {
	args := m.Called(ctx, restaurantID)
	c, _ := args.Get(0).(*models.TimeSlotConfig)
	return c, args.Error(1)
}

func (m *mockRepo) GetOperatingHours(ctx context.Context, restaurantID uint, dayOfWeek int) (*models.OperatingHours, error) {
	args := m.Called(ctx, restaurantID, dayOfWeek)
	h, _ := args.Get(0).(*models.OperatingHours)
	return h, args.Error(1)
}

func (m *mockRepo) IsDateBlocked(ctx context.Context, restaurantID uint, date string) (bool, error) {
	args := m.Called(ctx, restaurantID, date)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListBlockedDatesFrom(ctx context.Context, restaurantID uint, from string) ([]models.BlockedDate, error) {
	args := m.Called(ctx, restaurantID, from)
	b, _ := args.Get(0).([]models.BlockedDate)
	return b, args.Error(1)
}

func (m *mockRepo) BookedCounts(ctx context.Context, restaurantID uint, date string) (domain.BookedCounts, error) {
	args := m.Called(ctx, restaurantID, date)
	c, _ := args.Get(0).(domain.BookedCounts)
	return c, args.Error(1)
}

func (m *mockRepo) UpsertCustomer(ctx context.Context, restaurantID uint, in domain.CustomerInput) (*models.Customer, error) {
	args := m.Called(ctx, restaurantID, in)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *mockRepo) ListCustomers(ctx context.Context, restaurantID uint, query string) ([]models.Customer, error) {
	args := m.Called(ctx, restaurantID, query)
	c, _ := args.Get(0).([]models.Customer)
	return c, args.Error(1)
}

func (m *mockRepo) InsertReservation(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r.ID == 0 {
		r.ID = 99
	}
	return args.Error(0)
}

func (m *mockRepo) GetReservation(ctx context.Context, restaurantID uint, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, restaurantID, id)
	r, _ := args.Get(0).(*models.Reservation)
	return r, args.Error(1)
}

func (m *mockRepo) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepo) DeleteReservation(ctx context.Context, restaurantID uint, id uint) error {
	return m.Called(ctx, restaurantID, id).Error(0)
}

func (m *mockRepo) ListReservationsByDate(ctx context.Context, restaurantID uint, date string, includeCancelled bool) ([]models.Reservation, error) {
	args := m.Called(ctx, restaurantID, date, includeCancelled)
	r, _ := args.Get(0).([]models.Reservation)
	return r, args.Error(1)
}

func (m *mockRepo) ListReservationsBetween(ctx context.Context, restaurantID uint, from string, to string) ([]models.Reservation, error) {
	args := m.Called(ctx, restaurantID, from, to)
	r, _ := args.Get(0).([]models.Reservation)
	return r, args.Error(1)
}

// WithBookingLock runs fn against the mock itself.
func (m *mockRepo) WithBookingLock(ctx context.Context, restaurantID uint, fn func(tx domain.Repository) error) error {
	if err := m.Called(ctx, restaurantID).Error(0); err != nil {
		return err
	}
	return fn(m)
}

var _ domain.Repository = (*mockRepo)(nil)
