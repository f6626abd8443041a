package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitwing/splitwing/guard"
	"github.com/splitwing/splitwing/service"
)

// SessionGuard creates middleware that gates routes on the current session.
// While the session is still resolving it answers 503 with a short
// Retry-After; an anonymous session is redirected to the login route.
func SessionGuard(sessions *service.SessionService, g *guard.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := g.Evaluate(c.Request.URL.Path, sessions.Current())

		switch result.Decision {
		case guard.Pending:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session still resolving"})

		case guard.Redirect:
			c.Redirect(http.StatusFound, result.RedirectTo)
			c.Abort()

		case guard.Allow:
			c.Next()
		}
	}
}
