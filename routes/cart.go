package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/wardrobe-shop/wardrobe-api/controllers/cart"
	"github.com/wardrobe-shop/wardrobe-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/api/cart" endpoints. Cart ids equal user
// ids, so the ":id" routes reuse the self-or-admin guard.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", middleware.RequireAdmin, cartControllers.GetAllCarts(db))
		cartGroup.GET("/:id", middleware.RequireSelfOrAdmin("id"), cartControllers.GetCart(db))
		cartGroup.POST("/", cartControllers.CreateCart(db))
		cartGroup.PUT("/:id", middleware.RequireSelfOrAdmin("id"), cartControllers.UpdateCart(db))
		cartGroup.DELETE("/:id", middleware.RequireSelfOrAdmin("id"), cartControllers.DeleteCart(db))
	}
}
