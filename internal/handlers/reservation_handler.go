package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC       *ucReservation.CreateReservation
	updateUC       *ucReservation.UpdateReservation
	changeStatusUC *ucReservation.ChangeStatus
	deleteUC       *ucReservation.DeleteReservation
	getUC          *ucReservation.GetReservation
	listByDateUC   *ucReservation.ListReservationsByDate
	listByMonthUC  *ucReservation.ListReservationsByMonth
	log            zerolog.Logger
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	changeStatusUC *ucReservation.ChangeStatus,
	deleteUC *ucReservation.DeleteReservation,
	getUC *ucReservation.GetReservation,
	listByDateUC *ucReservation.ListReservationsByDate,
	listByMonthUC *ucReservation.ListReservationsByMonth,
	log zerolog.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		changeStatusUC: changeStatusUC,
		deleteUC:       deleteUC,
		getUC:          getUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
	Notes     string `json:"notes"`
}

type UpdateReservationRequest struct {
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	PartySize *int    `json:"party_size"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	restaurantID, userID := currentUser(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		RestaurantID: restaurantID,
		UserID:       &userID,
		Source:       ucReservation.SourceStaff,
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

	httpresp.Created(c, dto.ToReservationDetail(created))
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	restaurantID, _ := currentUser(c)
	includeCancelled, _ := strconv.ParseBool(c.Query("include_cancelled"))

	date, list, err := h.listByDateUC.Execute(
		c.Request.Context(),
		restaurantID,
		c.Query("date"),
		includeCancelled,
	)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"reservations": list,
		"total":        len(list),
	})
}

func (h *ReservationHandler) ListByMonth(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		badRequest(c, "invalid_year")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		badRequest(c, "invalid_month")
		return
	}

	list, err := h.listByMonthUC.Execute(c.Request.Context(), restaurantID, year, month)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"reservations": list,
		"total":        len(list),
	})
}

// ======================================================
// GET
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.getUC.Execute(c.Request.Context(), restaurantID, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	restaurantID, userID := currentUser(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), ucReservation.UpdateReservationInput{
		RestaurantID:  restaurantID,
		UserID:        &userID,
		ReservationID: id,
		Date:          req.Date,
		Time:          req.Time,
		PartySize:     req.PartySize,
		Notes:         req.Notes,
		Status:        req.Status,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.ToReservationDetail(updated))
}

func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	restaurantID, userID := currentUser(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing_fields")
		return
	}

	updated, err := h.changeStatusUC.Execute(c.Request.Context(), restaurantID, &userID, id, req.Status)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.ToReservationDetail(updated))
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	restaurantID, userID := currentUser(c)

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), restaurantID, &userID, id); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.NoContent(c)
}
