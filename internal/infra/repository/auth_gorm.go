package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservations/internal/domain/auth"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type AuthGormRepository struct {
	db *gorm.DB
}

func NewAuthGormRepository(db *gorm.DB) *AuthGormRepository {
	return &AuthGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AuthGormRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *AuthGormRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Preload("Restaurant").First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *AuthGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Omit("Restaurant").Create(u).Error
}

func (r *AuthGormRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&rest).Error; err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

func (r *AuthGormRepository) CreateRestaurantWithOwner(
	ctx context.Context,
	rest *models.Restaurant,
	owner *models.User,
	cfg *models.TimeSlotConfig,
	hours []models.OperatingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rest).Error; err != nil {
			return err
		}

		owner.RestaurantID = rest.ID
		if err := tx.Omit("Restaurant").Create(owner).Error; err != nil {
			return err
		}

		cfg.RestaurantID = rest.ID
		if err := tx.Create(cfg).Error; err != nil {
			return err
		}

		for i := range hours {
			hours[i].RestaurantID = rest.ID
		}
		if len(hours) > 0 {
			if err := tx.Create(&hours).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func (r *AuthGormRepository) CreateSession(ctx context.Context, s *models.Session) error {
	return r.db.WithContext(ctx).Omit("User").Create(s).Error
}

func (r *AuthGormRepository) GetActiveSession(ctx context.Context, refreshToken string, now time.Time) (*models.Session, error) {
	var s models.Session
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Restaurant").
		Where("refresh_token = ? AND expires_at > ?", refreshToken, now).
		First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *AuthGormRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	return r.db.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		Delete(&models.Session{}).Error
}

func (r *AuthGormRepository) DeleteUserSessions(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Session{}).Error
}

func (r *AuthGormRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

var _ auth.Repository = (*AuthGormRepository)(nil)
