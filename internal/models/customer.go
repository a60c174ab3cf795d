package models

import "time"

// Customers have no login; phone is the identity within a restaurant.
type Customer struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"uniqueIndex:idx_customer_phone;not null" json:"restaurant_id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100" json:"email"`
	Phone     string `gorm:"size:30;uniqueIndex:idx_customer_phone;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
