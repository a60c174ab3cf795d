package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	GetRestaurantBySlug(ctx context.Context, slug string) (*models.Restaurant, error)

	// CreateRestaurantWithOwner stores a new restaurant, its first user and
	// its default schedule in one transaction.
	CreateRestaurantWithOwner(
		ctx context.Context,
		r *models.Restaurant,
		owner *models.User,
		cfg *models.TimeSlotConfig,
		hours []models.OperatingHours,
	) error

	CreateSession(ctx context.Context, s *models.Session) error
	// GetActiveSession returns an unexpired session with its user loaded.
	GetActiveSession(ctx context.Context, refreshToken string, now time.Time) (*models.Session, error)
	DeleteSession(ctx context.Context, refreshToken string) error
	DeleteUserSessions(ctx context.Context, userID uint) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Roles
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)
