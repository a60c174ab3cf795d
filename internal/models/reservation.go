package models

import "time"

type Reservation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	RestaurantID uint `gorm:"index:idx_reservation_slot;not null" json:"restaurant_id"`

	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	// Date is YYYY-MM-DD and TimeSlot is HH:MM:00, both in the restaurant's timezone.
	Date     string `gorm:"size:10;index:idx_reservation_slot;not null" json:"date"`
	TimeSlot string `gorm:"size:8;index:idx_reservation_slot;not null" json:"time_slot"`

	PartySize int    `gorm:"not null" json:"party_size"`
	Notes     string `gorm:"size:500" json:"notes"`
	Status    string `gorm:"size:20;not null;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
