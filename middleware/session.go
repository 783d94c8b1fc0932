package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/session"
)

const identityKey = "identity"

// LoadIdentity resolves the session cookie, if any, into an Identity on the
// request context. It never rejects; gating is RequireRoles' job.
func LoadIdentity(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		ident, err := mgr.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				log.Printf("⚠️  session lookup failed: %v", err)
			}
			c.Next()
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// CurrentIdentity returns the authenticated identity for this request, if a
// valid session was presented.
func CurrentIdentity(c *gin.Context) (session.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return session.Identity{}, false
	}
	ident, ok := v.(session.Identity)
	return ident, ok && ident.IsLoggedIn
}

// RequireRoles rejects requests whose session is missing or whose role is not
// in the allowed set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "UNAUTHORIZED"})
			return
		}
		for _, role := range roles {
			if ident.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "UNAUTHORIZED"})
	}
}
