package settings

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Actor identifies who changes a restaurant's settings.
type Actor struct {
	RestaurantID uint
	UserID       *uint
}

func (a Actor) event(action, entity string, entityID *uint, meta any) audit.Event {
	return audit.Event{
		RestaurantID: a.RestaurantID,
		UserID:       a.UserID,
		Action:       action,
		Entity:       entity,
		EntityID:     entityID,
		Metadata:     meta,
	}
}

func loadRestaurant(
	ctx context.Context,
	repo domain.Repository,
	id uint,
) (*models.Restaurant, error) {

	rest, err := repo.GetRestaurant(ctx, id)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}
	if err != nil {
		return nil, httperr.Storage("get_restaurant", err)
	}
	return rest, nil
}
