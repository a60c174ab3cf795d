package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	reservation "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

// ======================================================
// LIST
// ======================================================

type ListBlockedDates struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListBlockedDates(repo domain.Repository) *ListBlockedDates {
	return &ListBlockedDates{repo: repo, now: time.Now}
}

// Execute lists blocked dates from today on, in the restaurant's timezone.
func (uc *ListBlockedDates) Execute(ctx context.Context, restaurantID uint) ([]models.BlockedDate, error) {
	rest, err := loadRestaurant(ctx, uc.repo, restaurantID)
	if err != nil {
		return nil, err
	}

	today := timezone.DateOf(uc.now().In(timezone.Location(rest.Timezone)))

	list, err := uc.repo.ListBlockedDatesFrom(ctx, restaurantID, today)
	if err != nil {
		return nil, httperr.Storage("list_blocked_dates", err)
	}
	if list == nil {
		list = []models.BlockedDate{}
	}
	return list, nil
}

// ======================================================
// ADD
// ======================================================

type AddBlockedDate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddBlockedDate(repo domain.Repository, audit *audit.Dispatcher) *AddBlockedDate {
	return &AddBlockedDate{repo: repo, audit: audit}
}

// Execute blocks date; blocking an already blocked date replaces its reason.
func (uc *AddBlockedDate) Execute(
	ctx context.Context,
	actor Actor,
	date string,
	reason string,
) (*models.BlockedDate, error) {

	d, err := reservation.ParseDate(date, time.UTC)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	b := &models.BlockedDate{
		RestaurantID: actor.RestaurantID,
		Date:         timezone.DateOf(d),
		Reason:       strings.TrimSpace(reason),
	}
	if err := uc.repo.UpsertBlockedDate(ctx, b); err != nil {
		return nil, httperr.Storage("upsert_blocked_date", err)
	}

	uc.audit.Dispatch(actor.event("date_blocked", "blocked_date", &b.ID, map[string]any{"date": b.Date}))

	return b, nil
}

// ======================================================
// REMOVE
// ======================================================

type RemoveBlockedDate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveBlockedDate(repo domain.Repository, audit *audit.Dispatcher) *RemoveBlockedDate {
	return &RemoveBlockedDate{repo: repo, audit: audit}
}

func (uc *RemoveBlockedDate) Execute(ctx context.Context, actor Actor, id uint) error {
	err := uc.repo.DeleteBlockedDate(ctx, actor.RestaurantID, id)
	if errors.Is(err, httperr.ErrNotFound) {
		return httperr.ErrBusiness("blocked_date_not_found")
	}
	if err != nil {
		return httperr.Storage("delete_blocked_date", err)
	}

	uc.audit.Dispatch(actor.event("date_unblocked", "blocked_date", &id, nil))
	return nil
}
