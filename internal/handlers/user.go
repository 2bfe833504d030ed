// internal/handlers/user.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hiracchi/minimart/internal/middleware"
	"github.com/hiracchi/minimart/internal/services"
)

type UserHandler struct {
	authService     *services.AuthService
	purchaseService *services.PurchaseService
}

func NewUserHandler(authService *services.AuthService, purchaseService *services.PurchaseService) *UserHandler {
	return &UserHandler{
		authService:     authService,
		purchaseService: purchaseService,
	}
}

// GET /users/:user_id
// Anyone's history page is viewable; there is deliberately no
// ownership check against the session.
func (h *UserHandler) History(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		userID = 0
	}

	items, err := h.purchaseService.HistoryPage(userID)
	if err != nil {
		renderFailure(c, err)
		return
	}

	totalPay, err := h.purchaseService.TotalPay(userID)
	if err != nil {
		renderFailure(c, err)
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		renderFailure(c, err)
		return
	}

	c.HTML(http.StatusOK, "mypage.html", gin.H{
		"Products":    items,
		"User":        user,
		"TotalPay":    totalPay,
		"CurrentUser": middleware.CurrentUser(c),
	})
}
