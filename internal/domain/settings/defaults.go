package settings

import (
	"fmt"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "21:00"
)

// DefaultTimeSlotConfig is what a newly registered restaurant starts with.
func DefaultTimeSlotConfig(restaurantID uint) models.TimeSlotConfig {
	return models.TimeSlotConfig{
		RestaurantID:           restaurantID,
		SlotDurationMinutes:    30,
		MaxReservationsPerSlot: 10,
		DefaultPartySize:       2,
		MaxPartySize:           10,
		AdvanceBookingDays:     30,
	}
}

// DefaultWeek opens every day with the default hours.
func DefaultWeek(restaurantID uint) []models.OperatingHours {
	week := make([]models.OperatingHours, 0, 7)
	for day := 0; day < 7; day++ {
		week = append(week, models.OperatingHours{
			RestaurantID: restaurantID,
			DayOfWeek:    day,
			OpenTime:     DefaultOpenTime,
			CloseTime:    DefaultCloseTime,
		})
	}
	return week
}

// ValidateHours checks one day and normalises its times to HH:MM.
func ValidateHours(h *models.OperatingHours) error {
	if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
		return httperr.ErrBusiness("invalid_day_of_week")
	}

	if h.OpenTime == "" {
		h.OpenTime = DefaultOpenTime
	}
	if h.CloseTime == "" {
		h.CloseTime = DefaultCloseTime
	}

	open, err := domain.ParseClock(h.OpenTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_hours")
	}
	closing, err := domain.ParseClock(h.CloseTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_hours")
	}
	if !h.IsClosed && closing <= open {
		return httperr.ErrBusiness("invalid_hours")
	}

	h.OpenTime = domain.FormatClock(open)
	h.CloseTime = domain.FormatClock(closing)
	return nil
}

func ValidateTimeSlotConfig(cfg *models.TimeSlotConfig) error {
	switch {
	case cfg.SlotDurationMinutes <= 0 || cfg.SlotDurationMinutes > 24*60:
		return fmt.Errorf("slot duration: %w", httperr.ErrBusiness("invalid_slot_config"))
	case cfg.MaxReservationsPerSlot < 0:
		return fmt.Errorf("capacity: %w", httperr.ErrBusiness("invalid_slot_config"))
	case cfg.DefaultPartySize < 1 || cfg.MaxPartySize < 1 || cfg.DefaultPartySize > cfg.MaxPartySize:
		return fmt.Errorf("party size: %w", httperr.ErrBusiness("invalid_slot_config"))
	case cfg.AdvanceBookingDays < 0:
		return fmt.Errorf("advance days: %w", httperr.ErrBusiness("invalid_slot_config"))
	}
	return nil
}
