package reservation

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// GetPublicRestaurant resolves the restaurant behind a public booking page.
type GetPublicRestaurant struct {
	repo domain.Repository
}

func NewGetPublicRestaurant(repo domain.Repository) *GetPublicRestaurant {
	return &GetPublicRestaurant{repo: repo}
}

func (uc *GetPublicRestaurant) Execute(
	ctx context.Context,
	slug string,
) (*models.Restaurant, error) {

	rest, err := uc.repo.GetRestaurantBySlug(ctx, slug)
	if errors.Is(err, httperr.ErrNotFound) {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}
	if err != nil {
		return nil, httperr.Storage("get_restaurant", err)
	}
	return rest, nil
}
