package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	log  zerolog.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, log zerolog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Date range, both ends inclusive
	// --------------------------------------------------

	if from := c.Query("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			badRequest(c, "invalid_date")
			return
		}
		f.From = d
	}

	if to := c.Query("to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			badRequest(c, "invalid_date")
			return
		}
		f.To = d.AddDate(0, 0, 1)
	}

	result, err := h.logs.List(c.Request.Context(), restaurantID, f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, result)
}
