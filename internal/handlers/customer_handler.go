package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

type CustomerHandler struct {
	listUC *ucReservation.ListCustomers
	log    zerolog.Logger
}

func NewCustomerHandler(listUC *ucReservation.ListCustomers, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{listUC: listUC, log: log}
}

// List searches customers by name, phone or email.
func (h *CustomerHandler) List(c *gin.Context) {
	restaurantID, _ := currentUser(c)

	customers, err := h.listUC.Execute(c.Request.Context(), restaurantID, c.Query("query"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, customers)
}
