// internal/handlers/render.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hiracchi/minimart/internal/middleware"
	"github.com/hiracchi/minimart/internal/services"
)

// Flash messages shown on the login page. The login template doubles
// as the error page for both failure kinds.
const (
	msgWelcome          = "Welcome to minimart! Please log in."
	msgBadCredentials   = "Email or password is incorrect."
	msgPermissionDenied = "Please log in to continue."
)

// requireUser is the authorization gate for the purchase and comment
// actions: a request without a full session identity fails with
// ErrPermissionDenied.
func requireUser(c *gin.Context) (*middleware.SessionUser, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, services.ErrPermissionDenied
	}
	return user, nil
}

// renderFailure is the top of the request-handling error path: the two
// named failure kinds become login-page renders with distinct statuses
// and messages, everything else a generic 500.
func renderFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAuthentication):
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Message": msgBadCredentials})
	case errors.Is(err, services.ErrPermissionDenied):
		c.HTML(http.StatusForbidden, "login.html", gin.H{"Message": msgPermissionDenied})
	default:
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("handler error")
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
	c.Abort()
}
