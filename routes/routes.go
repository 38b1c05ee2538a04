package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopease/shopease/controllers"
	"github.com/shopease/shopease/middleware"
	"github.com/shopease/shopease/services"
	"golang.org/x/time/rate"
)

// Register wires every API route onto the engine.
func Register(r *gin.Engine, orders *controllers.OrderController, products *controllers.ProductController, auth *controllers.AuthController, tokens *services.TokenService) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Shop-ease API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", auth.Register)
	authRoutes.POST("/login", middleware.RateLimit(rate.Every(time.Minute/20), 10), auth.Login)

	productRoutes := api.Group("/products")
	productRoutes.GET("", products.GetProducts)
	productRoutes.GET("/:id", products.GetProductByID)

	adminProducts := api.Group("/products")
	adminProducts.Use(middleware.Authenticate(tokens), middleware.AdminOnly())
	adminProducts.POST("", products.CreateProduct)
	adminProducts.PUT("/:id", products.UpdateProduct)
	adminProducts.DELETE("/:id", products.DeleteProduct)

	orderRoutes := api.Group("/orders")
	orderRoutes.Use(middleware.Authenticate(tokens))
	orderRoutes.POST("", orders.CreateOrder)
	orderRoutes.GET("/myorders", orders.GetMyOrders)
}
