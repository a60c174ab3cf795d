package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/middleware"
	ucSettings "github.com/BruksfildServices01/table-reservations/internal/usecase/settings"
)

func currentUser(c *gin.Context) (restaurantID uint, userID uint) {
	return c.MustGet(middleware.ContextRestaurantID).(uint),
		c.MustGet(middleware.ContextUserID).(uint)
}

func currentActor(c *gin.Context) ucSettings.Actor {
	restaurantID, userID := currentUser(c)
	return ucSettings.Actor{RestaurantID: restaurantID, UserID: &userID}
}

// idParam reads a positive numeric path parameter; it writes the 400 itself.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid_id")
		return 0, false
	}
	return uint(id), true
}
