package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	"github.com/BruksfildServices01/table-reservations/internal/models"
	ucSettings "github.com/BruksfildServices01/table-reservations/internal/usecase/settings"
)

// SettingsUseCases groups what the settings endpoints need.
type SettingsUseCases struct {
	GetRestaurant        *ucSettings.GetRestaurant
	UpdateRestaurant     *ucSettings.UpdateRestaurant
	ListOperatingHours   *ucSettings.ListOperatingHours
	UpdateOperatingHours *ucSettings.UpdateOperatingHours
	ListBlockedDates     *ucSettings.ListBlockedDates
	AddBlockedDate       *ucSettings.AddBlockedDate
	RemoveBlockedDate    *ucSettings.RemoveBlockedDate
	GetSlotConfig        *ucSettings.GetSlotConfig
	UpdateSlotConfig     *ucSettings.UpdateSlotConfig
}

type SettingsHandler struct {
	uc  SettingsUseCases
	log zerolog.Logger
}

func NewSettingsHandler(uc SettingsUseCases, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateRestaurantRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

type OperatingDayRequest struct {
	DayOfWeek *int   `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

type OperatingHoursUpdateRequest struct {
	Days []OperatingDayRequest `json:"days" binding:"required"`
}

type BlockDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type UpdateSlotConfigRequest struct {
	SlotDurationMinutes    *int `json:"slot_duration_minutes"`
	MaxReservationsPerSlot *int `json:"max_reservations_per_slot"`
	DefaultPartySize       *int `json:"default_party_size"`
	MaxPartySize           *int `json:"max_party_size"`
	AdvanceBookingDays     *int `json:"advance_booking_days"`
}

// ======================================================
// RESTAURANT
// ======================================================

func (h *SettingsHandler) GetRestaurant(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	rest, err := h.uc.GetRestaurant.Execute(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, rest)
}

func (h *SettingsHandler) UpdateRestaurant(c *gin.Context) {
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	rest, err := h.uc.UpdateRestaurant.Execute(c.Request.Context(), currentActor(c), ucSettings.UpdateRestaurantInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Timezone: req.Timezone,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, rest)
}

// ======================================================
// OPERATING HOURS
// ======================================================

func (h *SettingsHandler) GetOperatingHours(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	hours, err := h.uc.ListOperatingHours.Execute(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, hours)
}

func (h *SettingsHandler) UpdateOperatingHours(c *gin.Context) {
	var req OperatingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	days := make([]models.OperatingHours, 0, len(req.Days))
	for _, d := range req.Days {
		if d.DayOfWeek == nil {
			badRequest(c, "invalid_day_of_week")
			return
		}
		days = append(days, models.OperatingHours{
			DayOfWeek: *d.DayOfWeek,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsClosed:  d.IsClosed,
		})
	}

	hours, err := h.uc.UpdateOperatingHours.Execute(c.Request.Context(), currentActor(c), days)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, hours)
}

// ======================================================
// BLOCKED DATES
// ======================================================

func (h *SettingsHandler) ListBlockedDates(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	list, err := h.uc.ListBlockedDates.Execute(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

func (h *SettingsHandler) BlockDate(c *gin.Context) {
	var req BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing_fields")
		return
	}

	b, err := h.uc.AddBlockedDate.Execute(c.Request.Context(), currentActor(c), req.Date, req.Reason)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *SettingsHandler) UnblockDate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.uc.RemoveBlockedDate.Execute(c.Request.Context(), currentActor(c), id); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// SLOT CONFIG
// ======================================================

func (h *SettingsHandler) GetSlotConfig(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	cfg, err := h.uc.GetSlotConfig.Execute(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, cfg)
}

func (h *SettingsHandler) UpdateSlotConfig(c *gin.Context) {
	var req UpdateSlotConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	cfg, err := h.uc.UpdateSlotConfig.Execute(c.Request.Context(), currentActor(c), ucSettings.UpdateSlotConfigInput{
		SlotDurationMinutes:    req.SlotDurationMinutes,
		MaxReservationsPerSlot: req.MaxReservationsPerSlot,
		DefaultPartySize:       req.DefaultPartySize,
		MaxPartySize:           req.MaxPartySize,
		AdvanceBookingDays:     req.AdvanceBookingDays,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, cfg)
}
