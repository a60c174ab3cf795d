package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/table-reservations/internal/usecase/auth"
)

type MeHandler struct {
	meUC        *ucAuth.Me
	logoutAllUC *ucAuth.LogoutAll
	log         zerolog.Logger
}

func NewMeHandler(
	meUC *ucAuth.Me,
	logoutAllUC *ucAuth.LogoutAll,
	log zerolog.Logger,
) *MeHandler {
	return &MeHandler{
		meUC:        meUC,
		logoutAllUC: logoutAllUC,
		log:         log,
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	_, userID := currentUser(c)

	user, err := h.meUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       dto.ToUser(user),
		"restaurant": dto.ToRestaurantCard(&user.Restaurant),
	})
}

// LogoutAll revokes every refresh token of the current user. Access tokens
// already issued stay valid until they expire.
func (h *MeHandler) LogoutAll(c *gin.Context) {
	_, userID := currentUser(c)

	if err := h.logoutAllUC.Execute(c.Request.Context(), userID); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.NoContent(c)
}
