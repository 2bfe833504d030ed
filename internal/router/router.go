// internal/router/router.go
package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hiracchi/minimart/internal/config"
	"github.com/hiracchi/minimart/internal/handlers"
	"github.com/hiracchi/minimart/internal/middleware"
	"github.com/hiracchi/minimart/internal/services"
	"github.com/hiracchi/minimart/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db)
	catalogService := services.NewCatalogService(db)
	purchaseService := services.NewPurchaseService(db)
	commentService := services.NewCommentService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Session)
	productHandler := handlers.NewProductHandler(catalogService, purchaseService)
	userHandler := handlers.NewUserHandler(authService, purchaseService)
	commentHandler := handlers.NewCommentHandler(commentService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set session secret
	utils.SetSessionSecret(cfg.Session.Secret)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.Session(cfg.Session.CookieName))

	// HTML templates and static assets
	r.LoadHTMLGlob(cfg.Web.TemplateGlob)
	r.Static("/css", filepath.Join(cfg.Web.PublicDir, "css"))
	r.Static("/images", filepath.Join(cfg.Web.PublicDir, "images"))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Session
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", middleware.LoginRateLimit(), authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Storefront
	r.GET("/", productHandler.Index)
	r.GET("/users/:user_id", userHandler.History)
	r.GET("/products/:product_id", productHandler.Show)

	// Guarded mutations (the handlers gate on the session themselves)
	r.POST("/products/buy/:product_id", productHandler.Buy)
	r.POST("/comments/:product_id", commentHandler.Create)

	// Dataset reset for the benchmark harness
	r.GET("/initialize", adminHandler.Initialize)

	return r
}
