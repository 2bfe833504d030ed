// internal/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hiracchi/minimart/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// GET /initialize
// Destructive dataset reset used by the benchmark harness before a
// run. Unauthenticated on purpose; see config.Validate.
func (h *AdminHandler) Initialize(c *gin.Context) {
	if err := h.adminService.ResetToSeed(); err != nil {
		renderFailure(c, err)
		return
	}

	logrus.Info("dataset reset to seed state")
	c.String(http.StatusOK, "Finish")
}
