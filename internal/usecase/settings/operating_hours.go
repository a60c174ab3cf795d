package settings

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ListOperatingHours struct {
	repo domain.Repository
}

func NewListOperatingHours(repo domain.Repository) *ListOperatingHours {
	return &ListOperatingHours{repo: repo}
}

// Execute returns all seven days. Days without a stored row are reported
// closed, which is how availability treats them.
func (uc *ListOperatingHours) Execute(ctx context.Context, restaurantID uint) ([]models.OperatingHours, error) {
	stored, err := uc.repo.ListOperatingHours(ctx, restaurantID)
	if err != nil {
		return nil, httperr.Storage("list_operating_hours", err)
	}

	week := domain.DefaultWeek(restaurantID)
	for i := range week {
		week[i].IsClosed = true
	}
	for _, h := range stored {
		if h.DayOfWeek >= 0 && h.DayOfWeek < len(week) {
			week[h.DayOfWeek] = h
		}
	}
	return week, nil
}

type UpdateOperatingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateOperatingHours(repo domain.Repository, audit *audit.Dispatcher) *UpdateOperatingHours {
	return &UpdateOperatingHours{repo: repo, audit: audit}
}

// Execute upserts the given days; days not mentioned keep their hours.
func (uc *UpdateOperatingHours) Execute(
	ctx context.Context,
	actor Actor,
	days []models.OperatingHours,
) ([]models.OperatingHours, error) {

	if len(days) == 0 {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	byDay := make(map[int]models.OperatingHours, len(days))
	for _, d := range days {
		d := d
		if err := domain.ValidateHours(&d); err != nil {
			return nil, err
		}
		d.ID = 0
		d.RestaurantID = actor.RestaurantID
		byDay[d.DayOfWeek] = d
	}

	rows := make([]models.OperatingHours, 0, len(byDay))
	for _, d := range byDay {
		rows = append(rows, d)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DayOfWeek < rows[j].DayOfWeek })

	if err := uc.repo.UpsertOperatingHours(ctx, actor.RestaurantID, rows); err != nil {
		return nil, httperr.Storage("upsert_operating_hours", err)
	}

	uc.audit.Dispatch(actor.event("operating_hours_updated", "operating_hours", nil, map[string]any{"days": len(rows)}))

	return NewListOperatingHours(uc.repo).Execute(ctx, actor.RestaurantID)
}
