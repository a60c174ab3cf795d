package reservation

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	hooks Hooks
}

func NewDeleteReservation(repo domain.Repository, hooks Hooks) *DeleteReservation {
	return &DeleteReservation{repo: repo, hooks: hooks}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	restaurantID uint,
	userID *uint,
	reservationID uint,
) error {

	err := uc.repo.DeleteReservation(ctx, restaurantID, reservationID)
	if errors.Is(err, httperr.ErrNotFound) {
		return httperr.ErrBusiness("reservation_not_found")
	}
	if err != nil {
		return httperr.Storage("delete_reservation", err)
	}

	uc.hooks.Audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       userID,
		Action:       "reservation_deleted",
		Entity:       "reservation",
		EntityID:     &reservationID,
	})
	return nil
}
