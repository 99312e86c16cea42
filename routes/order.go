package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/wardrobe-shop/wardrobe-api/controllers/order"
	"github.com/wardrobe-shop/wardrobe-api/locks"
	"github.com/wardrobe-shop/wardrobe-api/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers all "/api/orders" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, userLocks *locks.KeyedMutex) {
	orderGroup := r.Group("/api/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.GET("/", middleware.RequireAdmin, orderControllers.GetAllOrders(db))
		orderGroup.GET("/ws", middleware.RequireAdmin, orderControllers.OrderFeedHandler)
		orderGroup.GET("/:id", middleware.RequireSelfOrAdmin("id"), orderControllers.GetUserOrders(db))
		orderGroup.POST("/", orderControllers.PlaceOrderHandler(db, userLocks))
		orderGroup.PUT("/:id", middleware.RequireAdmin, orderControllers.UpdateOrder(db))
		orderGroup.DELETE("/:id", middleware.RequireAdmin, orderControllers.DeleteOrder(db))
	}
}
