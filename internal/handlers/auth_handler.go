package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/table-reservations/internal/usecase/auth"
)

type AuthHandler struct {
	registerUC *ucAuth.Register
	loginUC    *ucAuth.Login
	refreshUC  *ucAuth.Refresh
	logoutUC   *ucAuth.Logout
	log        zerolog.Logger
}

func NewAuthHandler(
	registerUC *ucAuth.Register,
	loginUC *ucAuth.Login,
	refreshUC *ucAuth.Refresh,
	logoutUC *ucAuth.Logout,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		logoutUC:   logoutUC,
		log:        log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	RestaurantName    string `json:"restaurant_name"`
	RestaurantSlug    string `json:"restaurant_slug"`
	RestaurantPhone   string `json:"restaurant_phone"`
	RestaurantEmail   string `json:"restaurant_email"`
	RestaurantAddress string `json:"restaurant_address"`
	Timezone          string `json:"timezone"`

	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// --------- Responses ---------

type SessionResponse struct {
	AccessToken      string                 `json:"access_token"`
	TokenType        string                 `json:"token_type"`
	ExpiresAt        time.Time              `json:"expires_at"`
	RefreshToken     string                 `json:"refresh_token"`
	RefreshExpiresAt time.Time              `json:"refresh_expires_at"`
	User             dto.UserDTO            `json:"user"`
	Restaurant       *dto.RestaurantCardDTO `json:"restaurant,omitempty"`
}

func toSessionResponse(s *ucAuth.Session) SessionResponse {
	return SessionResponse{
		AccessToken:      s.AccessToken,
		TokenType:        "Bearer",
		ExpiresAt:        s.AccessExpiresAt,
		RefreshToken:     s.RefreshToken,
		RefreshExpiresAt: s.RefreshExpiresAt,
		User:             dto.ToUser(s.User),
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	session, rest, err := h.registerUC.Execute(c.Request.Context(), ucAuth.RegisterInput{
		RestaurantName: req.RestaurantName,
		Slug:           req.RestaurantSlug,
		Phone:          req.RestaurantPhone,
		Email:          req.RestaurantEmail,
		Address:        req.RestaurantAddress,
		Timezone:       req.Timezone,
		Username:       req.Username,
		Password:       req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := toSessionResponse(session)
	card := dto.ToRestaurantCard(rest)
	resp.Restaurant = &card

	httpresp.Created(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing_fields")
		return
	}

	session, err := h.loginUC.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing_fields")
		return
	}

	session, err := h.refreshUC.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Logout revokes one refresh token. Unknown tokens are not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing_fields")
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), req.RefreshToken); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.NoContent(c)
}
