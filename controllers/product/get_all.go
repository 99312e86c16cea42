package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

// GetProducts returns the catalog listing. `?new` limits the result to the
// five most recent products, `?collection` filters by exact company match.
//
// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		queryNew := c.Query("new")
		queryCollection := c.Query("collection")

		query := db.Model(&models.Product{})
		switch {
		case queryNew != "":
			query = query.Order("id desc").Limit(5)
		case queryCollection != "":
			query = query.Where("company = ?", queryCollection)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, models.ExpandProducts(products))
	}
}
