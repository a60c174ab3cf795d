package dto

import (
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// RestaurantCardDTO is the public view of a restaurant.
type RestaurantCardDTO struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	Timezone string `json:"timezone"`
}

type PartySizeLimitsDTO struct {
	Default int `json:"default"`
	Max     int `json:"max"`
}

type BlockedDateDTO struct {
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}

type UserDTO struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	RestaurantID uint   `json:"restaurant_id"`
}

func ToRestaurantCard(r *models.Restaurant) RestaurantCardDTO {
	return RestaurantCardDTO{
		Name:     r.Name,
		Slug:     r.Slug,
		Phone:    r.Phone,
		Email:    r.Email,
		Address:  r.Address,
		Timezone: r.Timezone,
	}
}

func ToBlockedDates(in []models.BlockedDate) []BlockedDateDTO {
	out := make([]BlockedDateDTO, 0, len(in))
	for _, b := range in {
		out = append(out, BlockedDateDTO{Date: b.Date, Reason: b.Reason})
	}
	return out
}

func ToUser(u *models.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		RestaurantID: u.RestaurantID,
	}
}
