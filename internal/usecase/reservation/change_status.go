package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

type ChangeStatus struct {
	repo  domain.Repository
	hooks Hooks
	now   func() time.Time
}

func NewChangeStatus(
	repo domain.Repository,
	hooks Hooks,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		hooks: hooks,
		now:   time.Now,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	restaurantID uint,
	userID *uint,
	reservationID uint,
	status string,
) (*models.Reservation, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	rest, err := loadRestaurant(ctx, uc.repo, restaurantID)
	if err != nil {
		return nil, err
	}

	res, err := loadReservation(ctx, uc.repo, restaurantID, reservationID)
	if err != nil {
		return nil, err
	}

	from := res.Status
	now := uc.now().In(timezone.Location(rest.Timezone))
	if err := domain.Transition(res, to, now); err != nil {
		return nil, err
	}
	if res.Status == from {
		return res, nil
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, httperr.Storage("update_reservation", err)
	}

	metrics.IncStatusChange(res.Status)

	uc.hooks.Audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       userID,
		Action:       "reservation_" + res.Status,
		Entity:       "reservation",
		EntityID:     &res.ID,
		Metadata:     map[string]any{"from": from},
	})

	uc.hooks.emit(reservationEvent(events.TypeReservationStatusChanged, res))

	return res, nil
}
