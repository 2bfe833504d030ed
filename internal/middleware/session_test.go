// internal/middleware/session_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiracchi/minimart/internal/utils"
)

func newSessionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session("minimart_session"))
	r.GET("/whoami", func(c *gin.Context) {
		if user := CurrentUser(c); user != nil {
			c.String(http.StatusOK, "%d:%s", user.ID, user.Name)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return r
}

func TestSessionParsesValidCookie(t *testing.T) {
	utils.SetSessionSecret("test-secret")
	r := newSessionTestRouter()

	token, err := utils.GenerateSessionToken(42, "alice", 1)
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "minimart_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "42:alice", w.Body.String())
}

func TestSessionWithoutCookieIsAnonymous(t *testing.T) {
	utils.SetSessionSecret("test-secret")
	r := newSessionTestRouter()

	req, _ := http.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "anonymous", w.Body.String())
}

func TestSessionWithTamperedCookieIsAnonymous(t *testing.T) {
	utils.SetSessionSecret("test-secret")
	token, err := utils.GenerateSessionToken(42, "alice", 1)
	require.NoError(t, err)

	utils.SetSessionSecret("rotated-secret")
	r := newSessionTestRouter()

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "minimart_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "anonymous", w.Body.String())
}
