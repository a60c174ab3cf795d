package settings

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
	"github.com/BruksfildServices01/table-reservations/internal/validators"
)

// ======================================================
// GET
// ======================================================

type GetRestaurant struct {
	repo domain.Repository
}

func NewGetRestaurant(repo domain.Repository) *GetRestaurant {
	return &GetRestaurant{repo: repo}
}

func (uc *GetRestaurant) Execute(ctx context.Context, restaurantID uint) (*models.Restaurant, error) {
	return loadRestaurant(ctx, uc.repo, restaurantID)
}

// ======================================================
// UPDATE (partial)
// ======================================================

type UpdateRestaurantInput struct {
	Name     *string
	Phone    *string
	Email    *string
	Address  *string
	Timezone *string
}

type UpdateRestaurant struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateRestaurant(repo domain.Repository, audit *audit.Dispatcher) *UpdateRestaurant {
	return &UpdateRestaurant{repo: repo, audit: audit}
}

func (uc *UpdateRestaurant) Execute(
	ctx context.Context,
	actor Actor,
	in UpdateRestaurantInput,
) (*models.Restaurant, error) {

	rest, err := loadRestaurant(ctx, uc.repo, actor.RestaurantID)
	if err != nil {
		return nil, err
	}

	changed := []string{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrBusiness("missing_fields")
		}
		rest.Name = name
		changed = append(changed, "name")
	}
	if in.Phone != nil {
		rest.Phone = strings.TrimSpace(*in.Phone)
		changed = append(changed, "phone")
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" && !validators.IsEmailFormatValid(email) {
			return nil, httperr.ErrBusiness("invalid_email")
		}
		rest.Email = email
		changed = append(changed, "email")
	}
	if in.Address != nil {
		rest.Address = strings.TrimSpace(*in.Address)
		changed = append(changed, "address")
	}
	if in.Timezone != nil {
		tz := strings.TrimSpace(*in.Timezone)
		if !timezone.IsValid(tz) {
			return nil, httperr.ErrBusiness("invalid_timezone")
		}
		rest.Timezone = tz
		changed = append(changed, "timezone")
	}

	if len(changed) == 0 {
		return rest, nil
	}

	if err := uc.repo.UpdateRestaurant(ctx, rest); err != nil {
		return nil, httperr.Storage("update_restaurant", err)
	}

	uc.audit.Dispatch(actor.event("restaurant_updated", "restaurant", &rest.ID, map[string]any{"fields": changed}))

	return rest, nil
}
