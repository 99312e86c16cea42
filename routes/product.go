package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/wardrobe-shop/wardrobe-api/controllers/product"
	"github.com/wardrobe-shop/wardrobe-api/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/api/products" endpoints. The catalog
// listing is public; the rest is admin only.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	productGroup := r.Group("/api/products")
	{
		productGroup.GET("/", productControllers.GetProducts(db))

		adminGroup := productGroup.Group("")
		adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
		{
			adminGroup.GET("/export/excel", productControllers.ExportProductsToExcel(db))
			adminGroup.GET("/:id", productControllers.GetProductByID(db))
			adminGroup.POST("/", productControllers.CreateProduct(db))
			adminGroup.PUT("/:id", productControllers.UpdateProduct(db))
			adminGroup.DELETE("/:id", productControllers.DeleteProduct(db))
		}
	}
}
