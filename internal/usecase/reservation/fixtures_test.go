package reservation

import (
	"time"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

const restaurantID uint = 1

// Saturday 1 June 2024, noon UTC.
var fixedNow = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

func restaurant() *models.Restaurant {
	return &models.Restaurant{ID: restaurantID, Name: "Bistro", Slug: "bistro", Timezone: "UTC"}
}

func slotConfig() *models.TimeSlotConfig {
	return &models.TimeSlotConfig{
		ID:                     7,
		RestaurantID:           restaurantID,
		SlotDurationMinutes:    30,
		MaxReservationsPerSlot: 10,
		DefaultPartySize:       2,
		MaxPartySize:           10,
		AdvanceBookingDays:     30,
	}
}

func openHours(day int) *models.OperatingHours {
	return &models.OperatingHours{
		RestaurantID: restaurantID,
		DayOfWeek:    day,
		OpenTime:     "09:00",
		CloseTime:    "21:00",
	}
}

// openDay stubs an ordinary configured day with the given counts.
func openDay(repo *mockRepo, date string, day int, counts domain.BookedCounts) {
	repo.On("GetRestaurantByID", mock.Anything, restaurantID).Return(restaurant(), nil)
	repo.On("GetTimeSlotConfig", mock.Anything, restaurantID).Return(slotConfig(), nil)
	repo.On("GetOperatingHours", mock.Anything, restaurantID, day).Return(openHours(day), nil)
	repo.On("IsDateBlocked", mock.Anything, restaurantID, date).Return(false, nil)
	repo.On("BookedCounts", mock.Anything, restaurantID, date).Return(counts, nil)
}
