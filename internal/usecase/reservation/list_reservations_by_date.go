package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

type ListReservationsByDate struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListReservationsByDate(repo domain.Repository) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
		now:  time.Now,
	}
}

// Execute lists one day ordered by slot. An empty date means today.
func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	restaurantID uint,
	date string,
	includeCancelled bool,
) (string, []dto.ReservationListDTO, error) {

	rest, err := loadRestaurant(ctx, uc.repo, restaurantID)
	if err != nil {
		return "", nil, err
	}

	day, err := parseDay(date, uc.now().In(timezone.Location(rest.Timezone)))
	if err != nil {
		return "", nil, err
	}
	dateStr := timezone.DateOf(day)

	list, err := uc.repo.ListReservationsByDate(ctx, restaurantID, dateStr, includeCancelled)
	if err != nil {
		return "", nil, httperr.Storage("list_reservations", err)
	}

	return dateStr, dto.ToReservationLists(list), nil
}
