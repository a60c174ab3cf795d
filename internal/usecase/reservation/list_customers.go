package reservation

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(
	ctx context.Context,
	restaurantID uint,
	query string,
) ([]models.Customer, error) {

	list, err := uc.repo.ListCustomers(ctx, restaurantID, strings.TrimSpace(query))
	if err != nil {
		return nil, httperr.Storage("list_customers", err)
	}
	if list == nil {
		list = []models.Customer{}
	}
	return list, nil
}
