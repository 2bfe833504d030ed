// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiracchi/minimart/internal/config"
	"github.com/hiracchi/minimart/internal/services"
	"github.com/hiracchi/minimart/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	session     config.SessionConfig
}

func NewAuthHandler(authService *services.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		session:     session,
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.session.CookieName, token, h.session.TTLHours*3600, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.session.CookieName, "", -1, "/", "", false, true)
}

// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.clearSessionCookie(c)
	c.HTML(http.StatusOK, "login.html", gin.H{"Message": msgWelcome})
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.clearSessionCookie(c)
		renderFailure(c, services.ErrAuthentication)
		return
	}

	user, err := h.authService.Authenticate(&req)
	if err != nil {
		if errors.Is(err, services.ErrAuthentication) {
			h.clearSessionCookie(c)
		}
		renderFailure(c, err)
		return
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Name, h.session.TTLHours)
	if err != nil {
		renderFailure(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.HTML(http.StatusOK, "login.html", gin.H{"Message": msgWelcome})
}
