package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

// Hooks are the post-commit side effects of the write use cases.
// Every field may be left zero.
type Hooks struct {
	Audit  *audit.Dispatcher
	Events events.Publisher
	Log    zerolog.Logger
}

func (h Hooks) emit(ev events.ReservationEvent) {
	events.Emit(h.Events, h.Log, ev)
}

func reservationEvent(typ string, r *models.Reservation) events.ReservationEvent {
	return events.ReservationEvent{
		Type:          typ,
		RestaurantID:  r.RestaurantID,
		ReservationID: r.ID,
		Reference:     r.Reference,
		Date:          r.Date,
		Time:          domain.DisplayTime(r.TimeSlot),
		PartySize:     r.PartySize,
		Status:        r.Status,
	}
}

// ======================================================
// LOOKUPS
// ======================================================

func loadRestaurant(
	ctx context.Context,
	repo domain.Repository,
	id uint,
) (*models.Restaurant, error) {

	rest, err := repo.GetRestaurantByID(ctx, id)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}
	if err != nil {
		return nil, httperr.Storage("get_restaurant", err)
	}
	return rest, nil
}

func loadReservation(
	ctx context.Context,
	repo domain.Repository,
	restaurantID uint,
	id uint,
) (*models.Reservation, error) {

	res, err := repo.GetReservation(ctx, restaurantID, id)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}
	if err != nil {
		return nil, httperr.Storage("get_reservation", err)
	}
	return res, nil
}

// loadConfig returns nil, nil when the restaurant has no slot configuration.
func loadConfig(
	ctx context.Context,
	repo domain.Repository,
	restaurantID uint,
) (*models.TimeSlotConfig, error) {

	cfg, err := repo.GetTimeSlotConfig(ctx, restaurantID)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.Storage("get_slot_config", err)
	}
	return cfg, nil
}

// loadDay fetches hours, blocked flag and booked counts for one date and
// generates its slots. Closed and blocked days skip the count query.
func loadDay(
	ctx context.Context,
	repo domain.Repository,
	gen domain.Generator,
	cfg *models.TimeSlotConfig,
	restaurantID uint,
	date time.Time,
) ([]domain.TimeSlot, domain.AvailabilityStatus, error) {

	dateStr := timezone.DateOf(date)

	hours, err := repo.GetOperatingHours(ctx, restaurantID, domain.DayOfWeek(date))
	if errors.Is(err, httperr.ErrNotFound) {
		hours, err = nil, nil
	}
	if err != nil {
		return nil, "", httperr.Storage("get_operating_hours", err)
	}

	blocked, err := repo.IsDateBlocked(ctx, restaurantID, dateStr)
	if err != nil {
		return nil, "", httperr.Storage("is_date_blocked", err)
	}

	status := domain.ClosureStatus(hours, blocked)
	if status != domain.AvailabilityOpen {
		return []domain.TimeSlot{}, status, nil
	}

	counts, err := repo.BookedCounts(ctx, restaurantID, dateStr)
	if err != nil {
		return nil, "", httperr.Storage("booked_counts", err)
	}

	return gen.Generate(hours, *cfg, blocked, counts), status, nil
}

// parseDay parses a YYYY-MM-DD date in loc; empty means today.
func parseDay(date string, today time.Time) (time.Time, error) {
	if date == "" {
		return timezone.Midnight(today), nil
	}
	d, err := domain.ParseDate(date, today.Location())
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}
