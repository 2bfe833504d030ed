// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hiracchi/minimart/internal/utils"
)

// SessionUser is the identity parsed out of the session cookie for one
// request. It is carried in the request context only, never in any
// process-wide state.
type SessionUser struct {
	ID   int64
	Name string
}

const sessionUserKey = "session_user"

// Session parses the signed session cookie, if present, into the
// request context. A missing, expired, or tampered cookie simply
// leaves the request anonymous.
func Session(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(sessionUserKey, &SessionUser{ID: claims.UserID, Name: claims.UserName})
		c.Next()
	}
}

// CurrentUser returns the authenticated identity for this request, or
// nil for anonymous visitors.
func CurrentUser(c *gin.Context) *SessionUser {
	if v, exists := c.Get(sessionUserKey); exists {
		if user, ok := v.(*SessionUser); ok {
			return user
		}
	}
	return nil
}

