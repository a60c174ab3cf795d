package settings

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type Repository interface {
	GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, r *models.Restaurant) error

	ListOperatingHours(ctx context.Context, restaurantID uint) ([]models.OperatingHours, error)
	// UpsertOperatingHours writes one row per day, keyed on (restaurant, day).
	UpsertOperatingHours(ctx context.Context, restaurantID uint, hours []models.OperatingHours) error

	ListBlockedDatesFrom(ctx context.Context, restaurantID uint, from string) ([]models.BlockedDate, error)
	// UpsertBlockedDate inserts the date or replaces the reason of an existing one.
	UpsertBlockedDate(ctx context.Context, b *models.BlockedDate) error
	DeleteBlockedDate(ctx context.Context, restaurantID uint, id uint) error

	GetTimeSlotConfig(ctx context.Context, restaurantID uint) (*models.TimeSlotConfig, error)
	SaveTimeSlotConfig(ctx context.Context, cfg *models.TimeSlotConfig) error
}
