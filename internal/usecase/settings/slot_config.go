package settings

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/settings"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// currentConfig falls back to unsaved defaults when none is stored.
func currentConfig(
	ctx context.Context,
	repo domain.Repository,
	restaurantID uint,
) (*models.TimeSlotConfig, error) {

	cfg, err := repo.GetTimeSlotConfig(ctx, restaurantID)
	if errors.Is(err, httperr.ErrNotFound) {
		def := domain.DefaultTimeSlotConfig(restaurantID)
		return &def, nil
	}
	if err != nil {
		return nil, httperr.Storage("get_slot_config", err)
	}
	return cfg, nil
}

type GetSlotConfig struct {
	repo domain.Repository
}

func NewGetSlotConfig(repo domain.Repository) *GetSlotConfig {
	return &GetSlotConfig{repo: repo}
}

func (uc *GetSlotConfig) Execute(ctx context.Context, restaurantID uint) (*models.TimeSlotConfig, error) {
	return currentConfig(ctx, uc.repo, restaurantID)
}

// UpdateSlotConfigInput is a partial update; nil fields are left unchanged.
type UpdateSlotConfigInput struct {
	SlotDurationMinutes    *int
	MaxReservationsPerSlot *int
	DefaultPartySize       *int
	MaxPartySize           *int
	AdvanceBookingDays     *int
}

type UpdateSlotConfig struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSlotConfig(repo domain.Repository, audit *audit.Dispatcher) *UpdateSlotConfig {
	return &UpdateSlotConfig{repo: repo, audit: audit}
}

func (uc *UpdateSlotConfig) Execute(
	ctx context.Context,
	actor Actor,
	in UpdateSlotConfigInput,
) (*models.TimeSlotConfig, error) {

	cfg, err := currentConfig(ctx, uc.repo, actor.RestaurantID)
	if err != nil {
		return nil, err
	}

	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.SlotDurationMinutes, in.SlotDurationMinutes)
	set(&cfg.MaxReservationsPerSlot, in.MaxReservationsPerSlot)
	set(&cfg.DefaultPartySize, in.DefaultPartySize)
	set(&cfg.MaxPartySize, in.MaxPartySize)
	set(&cfg.AdvanceBookingDays, in.AdvanceBookingDays)

	if err := domain.ValidateTimeSlotConfig(cfg); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTimeSlotConfig(ctx, cfg); err != nil {
		return nil, httperr.Storage("save_slot_config", err)
	}

	uc.audit.Dispatch(actor.event("slot_config_updated", "time_slot_config", &cfg.ID, map[string]any{
		"slot_duration_minutes":     cfg.SlotDurationMinutes,
		"max_reservations_per_slot": cfg.MaxReservationsPerSlot,
	}))

	return cfg, nil
}
