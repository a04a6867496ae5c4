package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pse_restaurant_admin/internal/session"
	"pse_restaurant_admin/pkg/utils"
)

// RequestID tags every request with a correlation id, echoed in the
// X-Request-ID header and picked up by the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// SessionGuard rejects requests when no usable token is stored. It runs
// before any admin route so an expired or missing login fails fast with a
// redirect hint instead of a wasted backend round trip.
func SessionGuard(s *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.TokenValid(time.Now()) {
			utils.RespondWithError(c, utils.NewAPIError(
				http.StatusUnauthorized, utils.ErrCodeUnauthorized,
				"Not logged in or session expired", "",
			).WithRedirect("/login"))
			return
		}

		if user, ok := s.User(); ok {
			c.Set("userID", user.ID)
			c.Set("username", user.Username)
			c.Set("userRole", string(user.Role))
		}
		c.Next()
	}
}

// AdminOnly restricts a route group to sessions whose stored user carries
// the admin role. SessionGuard must run first.
func AdminOnly(s *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			utils.RespondWithError(c, utils.NewAPIError(
				http.StatusForbidden, utils.ErrCodeForbidden,
				"Admin role required", "",
			).WithRedirect("/login"))
			return
		}
		c.Next()
	}
}
