package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	getRestaurant   *ucReservation.GetPublicRestaurant
	getAvailability *ucReservation.GetAvailability
	createUC        *ucReservation.CreateReservation
	log             zerolog.Logger
}

func NewPublicHandler(
	getRestaurant *ucReservation.GetPublicRestaurant,
	getAvailability *ucReservation.GetAvailability,
	createUC *ucReservation.CreateReservation,
	log zerolog.Logger,
) *PublicHandler {
	return &PublicHandler{
		getRestaurant:   getRestaurant,
		getAvailability: getAvailability,
		createUC:        createUC,
		log:             log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateReservationRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	PartySize int    `json:"party_size"`
	Notes     string `json:"notes"`
}

type AvailabilityResponse struct {
	Restaurant   dto.RestaurantCardDTO     `json:"restaurant"`
	Date         string                    `json:"date"`
	DayOfWeek    int                       `json:"day_of_week"`
	Status       domain.AvailabilityStatus `json:"status"`
	Slots        []domain.TimeSlot         `json:"slots"`
	PartySize    *dto.PartySizeLimitsDTO   `json:"party_size"`
	MinDate      string                    `json:"min_date"`
	MaxDate      string                    `json:"max_date,omitempty"`
	BlockedDates []dto.BlockedDateDTO      `json:"blocked_dates"`
}

////////////////////////////////////////////////////////
// RESTAURANT
////////////////////////////////////////////////////////

func (h *PublicHandler) Restaurant(c *gin.Context) {
	rest, err := h.getRestaurant.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.ToRestaurantCard(rest))
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	rest, err := h.getRestaurant.Execute(ctx, c.Param("slug"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	res, err := h.getAvailability.Execute(ctx, rest.ID, c.Query("date"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := AvailabilityResponse{
		Restaurant:   dto.ToRestaurantCard(res.Restaurant),
		Date:         res.Availability.Date,
		DayOfWeek:    res.Availability.DayOfWeek,
		Status:       res.Availability.Status,
		Slots:        res.Availability.Slots,
		MinDate:      res.MinDate,
		MaxDate:      res.MaxDate,
		BlockedDates: dto.ToBlockedDates(res.BlockedDates),
	}
	if res.Config != nil {
		resp.PartySize = &dto.PartySizeLimitsDTO{
			Default: res.Config.DefaultPartySize,
			Max:     res.Config.MaxPartySize,
		}
	}

	httpresp.OK(c, resp)
}

////////////////////////////////////////////////////////
// CREATE RESERVATION
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	ctx := c.Request.Context()

	var req PublicCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	rest, err := h.getRestaurant.Execute(ctx, c.Param("slug"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	created, err := h.createUC.Execute(ctx, ucReservation.CreateReservationInput{
		RestaurantID: rest.ID,
		Source:       ucReservation.SourcePublic,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.ToBookingConfirmation(created))
}
