package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

// UpdateReservationInput is a partial update; nil fields are left unchanged.
type UpdateReservationInput struct {
	RestaurantID  uint
	UserID        *uint
	ReservationID uint

	Date      *string
	Time      *string
	PartySize *int
	Notes     *string
	Status    *string
}

type UpdateReservation struct {
	repo  domain.Repository
	gen   domain.Generator
	hooks Hooks
	now   func() time.Time
}

func NewUpdateReservation(
	repo domain.Repository,
	gen domain.Generator,
	hooks Hooks,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		gen:   gen,
		hooks: hooks,
		now:   time.Now,
	}
}

// Execute applies the patch under the booking lock. Moving a reservation to
// another date or time admits it into the new slot like a fresh booking.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	rest, err := loadRestaurant(ctx, uc.repo, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(rest.Timezone)
	now := uc.now().In(loc)

	var (
		updated       *models.Reservation
		moved         bool
		statusChanged bool
	)

	err = uc.repo.WithBookingLock(ctx, in.RestaurantID, func(tx domain.Repository) error {
		res, err := loadReservation(ctx, tx, in.RestaurantID, in.ReservationID)
		if err != nil {
			return err
		}
		before := res.Status

		// -------- status --------
		if in.Status != nil {
			to, err := domain.ParseStatus(strings.TrimSpace(*in.Status))
			if err != nil {
				return err
			}
			if err := domain.Transition(res, to, now); err != nil {
				return err
			}
		}
		statusChanged = res.Status != before

		// -------- slot --------
		date, slot := res.Date, res.TimeSlot
		if in.Date != nil {
			d, err := domain.ParseDate(*in.Date, loc)
			if err != nil {
				return httperr.ErrBusiness("invalid_date")
			}
			date = timezone.DateOf(d)
		}
		if in.Time != nil {
			t, err := domain.NormalizeClock(*in.Time)
			if err != nil {
				return httperr.ErrBusiness("invalid_time")
			}
			slot = domain.SlotKey(t)
		}
		moved = date != res.Date || slot != res.TimeSlot

		// -------- party size --------
		var cfg *models.TimeSlotConfig
		if moved || in.PartySize != nil {
			if cfg, err = loadConfig(ctx, tx, in.RestaurantID); err != nil {
				return err
			}
			if cfg == nil {
				return httperr.ErrBusiness("booking_not_configured")
			}
		}
		if in.PartySize != nil {
			if *in.PartySize < 1 || *in.PartySize > cfg.MaxPartySize {
				return httperr.ErrBusiness("party_size_out_of_range")
			}
			res.PartySize = *in.PartySize
		}

		if moved {
			if domain.Status(res.Status) != domain.StatusConfirmed {
				return httperr.ErrBusiness("invalid_state")
			}
			day, err := domain.ParseDate(date, loc)
			if err != nil {
				return httperr.ErrBusiness("invalid_date")
			}
			slots, _, err := loadDay(ctx, tx, uc.gen, cfg, in.RestaurantID, day)
			if err != nil {
				return err
			}
			if err := domain.Admit(date, slots, domain.DisplayTime(slot)); err != nil {
				return err
			}
			res.Date, res.TimeSlot = date, slot
		}

		if in.Notes != nil {
			res.Notes = strings.TrimSpace(*in.Notes)
		}

		if err := tx.UpdateReservation(ctx, res); err != nil {
			return httperr.Storage("update_reservation", err)
		}
		updated = res
		return nil
	})

	if err != nil {
		if su, ok := domain.AsSlotUnavailable(err); ok {
			metrics.IncAdmissionRejected(su.Reason)
			return nil, su
		}
		return nil, httperr.Storage("update_reservation", err)
	}

	uc.hooks.Audit.Dispatch(audit.Event{
		RestaurantID: in.RestaurantID,
		UserID:       in.UserID,
		Action:       "reservation_updated",
		Entity:       "reservation",
		EntityID:     &updated.ID,
		Metadata: map[string]any{
			"moved":  moved,
			"status": updated.Status,
		},
	})

	if statusChanged {
		metrics.IncStatusChange(updated.Status)
		uc.hooks.emit(reservationEvent(events.TypeReservationStatusChanged, updated))
	}
	if moved {
		uc.hooks.emit(reservationEvent(events.TypeReservationRescheduled, updated))
	}

	return updated, nil
}
