// internal/handlers/comment.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hiracchi/minimart/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// POST /comments/:product_id
func (h *CommentHandler) Create(c *gin.Context) {
	user, err := requireUser(c)
	if err != nil {
		renderFailure(c, err)
		return
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		productID = 0
	}

	if err := h.commentService.Create(productID, user.ID, c.PostForm("content")); err != nil {
		renderFailure(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", user.ID))
}
