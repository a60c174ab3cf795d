package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/dto"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	restaurantID uint,
	reservationID uint,
) (*dto.ReservationDetailDTO, error) {

	res, err := loadReservation(ctx, uc.repo, restaurantID, reservationID)
	if err != nil {
		return nil, err
	}

	out := dto.ToReservationDetail(res)
	return &out, nil
}
