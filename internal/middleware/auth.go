package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	authuc "github.com/BruksfildServices01/table-reservations/internal/usecase/auth"
)

const (
	ContextUserID       = "userID"
	ContextRestaurantID = "restaurantID"
	ContextUserRole     = "userRole"
)

// TokenParser verifies an access token.
type TokenParser interface {
	Parse(raw string) (*authuc.Claims, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authorization header is required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Expected a Bearer token.")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token is invalid or expired.")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_payload", "Token is invalid or expired.")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRestaurantID, claims.RestaurantID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole rejects users whose role is not in roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.Abort(c, http.StatusForbidden, "forbidden", "Not allowed for this role.")
	}
}
