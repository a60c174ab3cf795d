package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type CustomerInput struct {
	Phone     string
	FirstName string
	LastName  string
	Email     string
}

// Repository is the storage the availability and booking use cases depend on.
// Lookups that match nothing return httperr.ErrNotFound.
type Repository interface {
	// -------- Restaurant --------
	GetRestaurantByID(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	GetRestaurantBySlug(
		ctx context.Context,
		slug string,
	) (*models.Restaurant, error)

	// -------- Availability inputs --------
	GetTimeSlotConfig(
		ctx context.Context,
		restaurantID uint,
	) (*models.TimeSlotConfig, error)

	GetOperatingHours(
		ctx context.Context,
		restaurantID uint,
		dayOfWeek int,
	) (*models.OperatingHours, error)

	IsDateBlocked(
		ctx context.Context,
		restaurantID uint,
		date string,
	) (bool, error)

	ListBlockedDatesFrom(
		ctx context.Context,
		restaurantID uint,
		from string,
	) ([]models.BlockedDate, error)

	// BookedCounts counts non-cancelled reservations per slot key.
	BookedCounts(
		ctx context.Context,
		restaurantID uint,
		date string,
	) (BookedCounts, error)

	// -------- Customer --------
	UpsertCustomer(
		ctx context.Context,
		restaurantID uint,
		in CustomerInput,
	) (*models.Customer, error)

	ListCustomers(
		ctx context.Context,
		restaurantID uint,
		query string,
	) ([]models.Customer, error)

	// -------- Reservation --------
	InsertReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		restaurantID uint,
		id uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		restaurantID uint,
		id uint,
	) error

	ListReservationsByDate(
		ctx context.Context,
		restaurantID uint,
		date string,
		includeCancelled bool,
	) ([]models.Reservation, error)

	// ListReservationsBetween returns non-cancelled reservations with
	// from <= date < to.
	ListReservationsBetween(
		ctx context.Context,
		restaurantID uint,
		from string,
		to string,
	) ([]models.Reservation, error)

	// -------- Transactions --------

	// WithBookingLock runs fn in one transaction holding a row lock on the
	// restaurant's slot configuration. Bookings for the same restaurant are
	// serialised, so counts read inside fn stay valid until commit.
	WithBookingLock(
		ctx context.Context,
		restaurantID uint,
		fn func(tx Repository) error,
	) error
}
