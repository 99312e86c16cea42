package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/wardrobe-shop/wardrobe-api/controllers/address"
	"github.com/wardrobe-shop/wardrobe-api/locks"
	"github.com/wardrobe-shop/wardrobe-api/middleware"
	"gorm.io/gorm"
)

// SetupAddressRoutes registers all "/api/address" endpoints.
func SetupAddressRoutes(r *gin.Engine, db *gorm.DB, userLocks *locks.KeyedMutex) {
	addressGroup := r.Group("/api/address")
	addressGroup.Use(middleware.ValidateToken)
	{
		addressGroup.GET("/", middleware.RequireAdmin, addressControllers.GetAllAddresses(db))
		addressGroup.GET("/:id", middleware.RequireSelfOrAdmin("id"), addressControllers.GetUserAddresses(db))
		addressGroup.POST("/", addressControllers.CreateAddress(db))
		addressGroup.PUT("/default/:id", addressControllers.SetDefaultAddress(db, userLocks))
		addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))
		addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
	}
}
