package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/wardrobe-shop/wardrobe-api/controllers/auth"
	"github.com/wardrobe-shop/wardrobe-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/api/auth" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/", authControllers.Login(db))

		authGroup.GET("/", middleware.ValidateToken, authControllers.GetCurrentUser(db))
		authGroup.PUT("/:id", middleware.ValidateToken, middleware.RequireSelfOrAdmin("id"), authControllers.UpdateUser(db))
		authGroup.DELETE("/:id", middleware.ValidateToken, middleware.RequireSelfOrAdmin("id"), authControllers.DeleteUser(db))
	}
}
