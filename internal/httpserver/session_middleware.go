package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chillout-web/internal/session"
)

const sessionCtxKey = "sessionID"

// sessionMiddleware lazily issues the session cookie. The identifier is
// generated once per browser profile and never rotated afterwards; it
// correlates the browser with its remote cart and nothing more.
func sessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	maxAge := int(ttl / time.Second)
	return func(c *gin.Context) {
		id, err := c.Cookie(session.CookieName)
		if err != nil || !session.ValidID(id) {
			id = session.NewID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, id, maxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
