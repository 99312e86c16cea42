package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/wardrobe-shop/wardrobe-api/controllers/auth"
	userControllers "github.com/wardrobe-shop/wardrobe-api/controllers/user"
	"github.com/wardrobe-shop/wardrobe-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/api/users" endpoints. Registration is
// public; everything else is admin only.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/api/users")
	{
		userGroup.POST("/", authControllers.Register(db))

		adminGroup := userGroup.Group("")
		adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
		{
			adminGroup.GET("/", userControllers.GetAllUsers(db))
			adminGroup.GET("/find/:id", userControllers.GetUserByID(db))
			adminGroup.GET("/stats", userControllers.GetUserStats(db))
		}
	}
}
