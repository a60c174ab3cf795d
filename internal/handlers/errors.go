package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/middleware"
)

type businessReply struct {
	status  int
	message string
}

var businessReplies = map[string]businessReply{
	// validation
	"missing_fields":          {http.StatusBadRequest, "Required fields are missing."},
	"invalid_request":         {http.StatusBadRequest, "Invalid request body."},
	"invalid_email":           {http.StatusBadRequest, "Invalid email address."},
	"invalid_phone":           {http.StatusBadRequest, "Invalid phone number."},
	"invalid_date":            {http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD."},
	"invalid_time":            {http.StatusBadRequest, "Invalid time, expected HH:MM."},
	"invalid_year":            {http.StatusBadRequest, "Invalid year."},
	"invalid_month":           {http.StatusBadRequest, "Invalid month."},
	"invalid_id":              {http.StatusBadRequest, "Invalid id."},
	"party_size_out_of_range": {http.StatusBadRequest, "Party size is out of range."},
	"date_out_of_range":       {http.StatusBadRequest, "Date is outside the booking window."},
	"booking_not_configured":  {http.StatusBadRequest, "Online booking is not configured for this restaurant."},
	"invalid_state":           {http.StatusBadRequest, "The reservation cannot change to that status."},
	"invalid_status":          {http.StatusBadRequest, "Unknown reservation status."},

	// settings
	"invalid_hours":       {http.StatusBadRequest, "Opening time must be before closing time."},
	"invalid_day_of_week": {http.StatusBadRequest, "Day of week must be between 0 and 6."},
	"invalid_slot_config": {http.StatusBadRequest, "Invalid slot configuration."},
	"invalid_timezone":    {http.StatusBadRequest, "Unknown timezone."},

	// accounts
	"invalid_slug":          {http.StatusBadRequest, "Slug may only contain lowercase letters, digits and dashes."},
	"invalid_username":      {http.StatusBadRequest, "Invalid username."},
	"weak_password":         {http.StatusBadRequest, "Password is too short."},
	"invalid_role":          {http.StatusBadRequest, "Unknown role."},
	"slug_already_exists":   {http.StatusConflict, "Slug is already in use."},
	"username_taken":        {http.StatusConflict, "Username is already in use."},
	"invalid_credentials":   {http.StatusUnauthorized, "Invalid username or password."},
	"invalid_refresh_token": {http.StatusUnauthorized, "Refresh token is invalid or expired."},

	// lookups
	"restaurant_not_found":   {http.StatusNotFound, "Restaurant not found."},
	"reservation_not_found":  {http.StatusNotFound, "Reservation not found."},
	"blocked_date_not_found": {http.StatusNotFound, "Blocked date not found."},
	"user_not_found":         {http.StatusNotFound, "User not found."},
}

// writeError maps a use case error onto the JSON error envelope.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	if su, ok := domain.AsSlotUnavailable(err); ok {
		httperr.WriteDetails(c, http.StatusConflict, "slot_unavailable", "The requested time is not available.", gin.H{
			"requested_time":  su.Time,
			"reason":          su.Reason,
			"available_times": su.Alternatives,
		})
		return
	}

	if code := httperr.BusinessCode(err); code != "" {
		reply, ok := businessReplies[code]
		if !ok {
			reply = businessReply{http.StatusBadRequest, "Request rejected."}
		}
		httperr.Write(c, reply.status, code, reply.message)
		return
	}

	ev := log.Error()
	if httperr.IsStorage(err) {
		ev = log.Warn()
	}
	ev.Err(err).
		Str("request_id", c.GetString(middleware.ContextRequestID)).
		Str("path", c.FullPath()).
		Msg("request failed")

	if httperr.IsStorage(err) {
		httperr.Unavailable(c, "storage_unavailable", "Service temporarily unavailable, try again shortly.")
		return
	}
	httperr.Internal(c, "internal_error", "Unexpected error.")
}

func badRequest(c *gin.Context, code string) {
	reply := businessReplies[code]
	httperr.BadRequest(c, code, reply.message)
}
