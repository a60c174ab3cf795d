package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

func (r *SettingsGormRepository) UpdateRestaurant(ctx context.Context, rest *models.Restaurant) error {
	return r.db.WithContext(ctx).Save(rest).Error
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (r *SettingsGormRepository) ListOperatingHours(ctx context.Context, restaurantID uint) ([]models.OperatingHours, error) {
	var hours []models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *SettingsGormRepository) UpsertOperatingHours(
	ctx context.Context,
	restaurantID uint,
	hours []models.OperatingHours,
) error {

	if len(hours) == 0 {
		return nil
	}
	for i := range hours {
		hours[i].RestaurantID = restaurantID
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "restaurant_id"}, {Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"open_time", "close_time", "is_closed", "updated_at",
			}),
		}).
		Create(&hours).Error
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (r *SettingsGormRepository) ListBlockedDatesFrom(
	ctx context.Context,
	restaurantID uint,
	from string,
) ([]models.BlockedDate, error) {

	var dates []models.BlockedDate
	q := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if err := q.Order("date ASC").Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *SettingsGormRepository) UpsertBlockedDate(ctx context.Context, b *models.BlockedDate) error {
	db := r.db.WithContext(ctx)

	if err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"reason"}),
		}).
		Create(b).Error; err != nil {
		return err
	}

	// reload so the caller sees the surviving row
	var stored models.BlockedDate
	if err := db.
		Where("restaurant_id = ? AND date = ?", b.RestaurantID, b.Date).
		First(&stored).Error; err != nil {
		return err
	}
	*b = stored
	return nil
}

func (r *SettingsGormRepository) DeleteBlockedDate(ctx context.Context, restaurantID uint, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&models.BlockedDate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Slot configuration
// --------------------------------------------------

func (r *SettingsGormRepository) GetTimeSlotConfig(ctx context.Context, restaurantID uint) (*models.TimeSlotConfig, error) {
	var cfg models.TimeSlotConfig
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&cfg).Error; err != nil {
		return nil, translate(err)
	}
	return &cfg, nil
}

func (r *SettingsGormRepository) SaveTimeSlotConfig(ctx context.Context, cfg *models.TimeSlotConfig) error {
	if cfg.ID == 0 {
		return r.db.WithContext(ctx).Create(cfg).Error
	}
	return r.db.WithContext(ctx).Save(cfg).Error
}

var _ settings.Repository = (*SettingsGormRepository)(nil)
