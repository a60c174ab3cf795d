package reservation

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

type ListReservationsByMonth struct {
	repo domain.Repository
}

func NewListReservationsByMonth(
	repo domain.Repository,
) *ListReservationsByMonth {
	return &ListReservationsByMonth{
		repo: repo,
	}
}

func (uc *ListReservationsByMonth) Execute(
	ctx context.Context,
	restaurantID uint,
	year int,
	month int,
) ([]dto.ReservationListDTO, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	to := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)

	list, err := uc.repo.ListReservationsBetween(ctx, restaurantID, from, to)
	if err != nil {
		return nil, httperr.Storage("list_reservations", err)
	}

	return dto.ToReservationLists(list), nil
}
