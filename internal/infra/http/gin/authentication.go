package ginserver

import (
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"

	"venuebook/internal/domain/session"
)

const sessionContextKey = "venuebook.session"

// SessionMiddleware builds the caller's session from request headers and
// stashes it on the context. Nothing here rejects: handlers decide
// whether the operation needs authentication, and the domain validates
// the session before any remote call.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		name := c.GetHeader("X-Profile-Name")
		email := c.GetHeader("X-Profile-Email")
		manager := strings.EqualFold(c.GetHeader("X-Venue-Manager"), "true")
		c.Set(sessionContextKey, session.New(name, email, token, manager))
		c.Next()
	}
}

func currentSession(c *gin.Context) session.Session {
	val, exists := c.Get(sessionContextKey)
	if !exists {
		return session.Session{}
	}
	sess, ok := val.(session.Session)
	if !ok {
		return session.Session{}
	}
	return sess
}

func requireSession(c *gin.Context) (session.Session, bool) {
	sess := currentSession(c)
	if err := sess.Validate(); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return session.Session{}, false
	}
	return sess, true
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
