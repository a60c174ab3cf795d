package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func newAvailability(repo *mockRepo) *GetAvailability {
	uc := NewGetAvailability(repo, domain.NewGenerator(false))
	uc.now = fixedNow
	return uc
}

func TestGetAvailability_OpenDay(t *testing.T) {
	repo := new(mockRepo)
	openDay(repo, bookingDate, 1, domain.BookedCounts{"18:00:00": 10})
	repo.On("ListBlockedDatesFrom", mock.Anything, restaurantID, "2024-06-01").
		Return([]models.BlockedDate{{Date: "2024-12-25"}}, nil)

	out, err := newAvailability(repo).Execute(context.Background(), restaurantID, bookingDate)
	require.NoError(t, err)

	assert.Equal(t, domain.AvailabilityOpen, out.Availability.Status)
	assert.Equal(t, 1, out.Availability.DayOfWeek)
	require.Len(t, out.Availability.Slots, 23)
	assert.Equal(t, "09:00", out.Availability.Slots[0].Time)
	assert.Equal(t, "20:00", out.Availability.Slots[22].Time)

	for _, s := range out.Availability.Slots {
		if s.Time == "18:00" {
			assert.False(t, s.Available)
			assert.Equal(t, 0, s.RemainingSpots)
		}
	}

	assert.Equal(t, "2024-06-01", out.MinDate)
	assert.Equal(t, "2024-07-01", out.MaxDate)
	assert.Len(t, out.BlockedDates, 1)
	assert.NotNil(t, out.Config)
}

func TestGetAvailability_DefaultsToToday(t *testing.T) {
	repo := new(mockRepo)
	openDay(repo, "2024-06-01", 6, domain.BookedCounts{})
	repo.On("ListBlockedDatesFrom", mock.Anything, restaurantID, "2024-06-01").Return(nil, nil)

	out, err := newAvailability(repo).Execute(context.Background(), restaurantID, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", out.Availability.Date)
	assert.Equal(t, 6, out.Availability.DayOfWeek)
	assert.NotNil(t, out.BlockedDates)
}

func TestGetAvailability_Blocked(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetRestaurantByID", mock.Anything, restaurantID).Return(restaurant(), nil)
	repo.On("GetTimeSlotConfig", mock.Anything, restaurantID).Return(slotConfig(), nil)
	repo.On("GetOperatingHours", mock.Anything, restaurantID, 1).Return(openHours(1), nil)
	repo.On("IsDateBlocked", mock.Anything, restaurantID, bookingDate).Return(true, nil)
	repo.On("ListBlockedDatesFrom", mock.Anything, restaurantID, "2024-06-01").Return(nil, nil)

	out, err := newAvailability(repo).Execute(context.Background(), restaurantID, bookingDate)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityBlocked, out.Availability.Status)
	assert.NotNil(t, out.Availability.Slots)
	assert.Empty(t, out.Availability.Slots)
	repo.AssertNotCalled(t, "BookedCounts", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := new(mockRepo)
	closed := openHours(1)
	closed.IsClosed = true
	repo.On("GetRestaurantByID", mock.Anything, restaurantID).Return(restaurant(), nil)
	repo.On("GetTimeSlotConfig", mock.Anything, restaurantID).Return(slotConfig(), nil)
	repo.On("GetOperatingHours", mock.Anything, restaurantID, 1).Return(closed, nil)
	repo.On("IsDateBlocked", mock.Anything, restaurantID, bookingDate).Return(false, nil)
	repo.On("ListBlockedDatesFrom", mock.Anything, restaurantID, "2024-06-01").Return(nil, nil)

	out, err := newAvailability(repo).Execute(context.Background(), restaurantID, bookingDate)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityClosed, out.Availability.Status)
	assert.Empty(t, out.Availability.Slots)
}

func TestGetAvailability_NotConfigured(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetRestaurantByID", mock.Anything, restaurantID).Return(restaurant(), nil)
	repo.On("GetTimeSlotConfig", mock.Anything, restaurantID).Return(nil, httperr.ErrNotFound)

	out, err := newAvailability(repo).Execute(context.Background(), restaurantID, bookingDate)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityNotConfigured, out.Availability.Status)
	assert.Empty(t, out.Availability.Slots)
	assert.Nil(t, out.Config)
}

func TestGetAvailability_Errors(t *testing.T) {
	t.Run("unknown restaurant", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetRestaurantByID", mock.Anything, restaurantID).Return(nil, httperr.ErrNotFound)

		_, err := newAvailability(repo).Execute(context.Background(), restaurantID, bookingDate)
		assert.True(t, httperr.IsBusiness(err, "restaurant_not_found"))
	})

	t.Run("bad date", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetRestaurantByID", mock.Anything, restaurantID).Return(restaurant(), nil)

		_, err := newAvailability(repo).Execute(context.Background(), restaurantID, "2024-02-30")
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	})

	t.Run("storage", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetRestaurantByID", mock.Anything, restaurantID).Return(restaurant(), nil)
		repo.On("GetTimeSlotConfig", mock.Anything, restaurantID).Return(nil, errors.New("timeout"))

		_, err := newAvailability(repo).Execute(context.Background(), restaurantID, bookingDate)
		assert.True(t, httperr.IsStorage(err))
	})
}
