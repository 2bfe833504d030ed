// internal/handlers/product.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hiracchi/minimart/internal/middleware"
	"github.com/hiracchi/minimart/internal/services"
)

type ProductHandler struct {
	catalogService  *services.CatalogService
	purchaseService *services.PurchaseService
}

func NewProductHandler(catalogService *services.CatalogService, purchaseService *services.PurchaseService) *ProductHandler {
	return &ProductHandler{
		catalogService:  catalogService,
		purchaseService: purchaseService,
	}
}

// GET /?page=N
func (h *ProductHandler) Index(c *gin.Context) {
	// Non-numeric or missing page falls back to the first page.
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		page = 0
	}

	products, err := h.catalogService.ListPage(page)
	if err != nil {
		renderFailure(c, err)
		return
	}

	productIDs := make([]int64, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}

	comments, err := h.catalogService.CommentsForProducts(productIDs)
	if err != nil {
		renderFailure(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Products":    products,
		"Comments":    comments,
		"CurrentUser": middleware.CurrentUser(c),
	})
}

// GET /products/:product_id
func (h *ProductHandler) Show(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		productID = 0
	}

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		renderFailure(c, err)
		return
	}

	var userID int64
	user := middleware.CurrentUser(c)
	if user != nil {
		userID = user.ID
	}

	alreadyBought, err := h.purchaseService.AlreadyBought(productID, userID)
	if err != nil {
		renderFailure(c, err)
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"Product":       product,
		"AlreadyBought": alreadyBought,
		"CurrentUser":   user,
	})
}

// POST /products/buy/:product_id
func (h *ProductHandler) Buy(c *gin.Context) {
	user, err := requireUser(c)
	if err != nil {
		renderFailure(c, err)
		return
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		productID = 0
	}

	if err := h.purchaseService.Buy(productID, user.ID); err != nil {
		renderFailure(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", user.ID))
}
