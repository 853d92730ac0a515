package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

const sessionKey = "session"

// APIKey gates the API behind a shared key. An empty configured key disables
// the check (local development).
func APIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected != "" && c.GetHeader("X-API-Key") != expected {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or missing API key")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity resolves the calling user from the X-User-ID header into a
// request-scoped session. The session object, not any global, is what the
// reservation engine receives. Requests without the header get a read-only
// guest session.
func Identity(store services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Session{Role: models.RoleGuest}

		if raw := c.GetHeader("X-User-ID"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid X-User-ID header")
				c.Abort()
				return
			}
			user, err := store.UserByID(c.Request.Context(), uint(id))
			if err != nil {
				utils.JSONError(c, http.StatusUnauthorized, "unknown user")
				c.Abort()
				return
			}
			session = models.Session{UserID: user.ID, Role: models.ParseRole(string(user.Role))}
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session placed on the context by Identity.
func SessionFrom(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok2 := v.(models.Session); ok2 {
			return s
		}
	}
	return models.Session{Role: models.RoleGuest}
}
