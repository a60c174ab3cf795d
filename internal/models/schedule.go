package models

import "time"

type OperatingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"uniqueIndex:idx_hours_day;not null" json:"restaurant_id"`

	DayOfWeek int    `gorm:"uniqueIndex:idx_hours_day;not null" json:"day_of_week"`
	OpenTime  string `gorm:"size:8;not null" json:"open_time"`
	CloseTime string `gorm:"size:8;not null" json:"close_time"`
	IsClosed  bool   `gorm:"not null;default:false" json:"is_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlockedDate struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"uniqueIndex:idx_blocked_date;not null" json:"restaurant_id"`
	Date         string `gorm:"size:10;uniqueIndex:idx_blocked_date;not null" json:"date"`
	Reason       string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

type TimeSlotConfig struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"uniqueIndex;not null" json:"restaurant_id"`

	SlotDurationMinutes    int `gorm:"not null" json:"slot_duration_minutes"`
	MaxReservationsPerSlot int `gorm:"not null" json:"max_reservations_per_slot"`
	DefaultPartySize       int `gorm:"not null" json:"default_party_size"`
	MaxPartySize           int `gorm:"not null" json:"max_party_size"`
	AdvanceBookingDays     int `gorm:"not null" json:"advance_booking_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
