package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Title   *string  `json:"title"`
	Desc    *string  `json:"desc"`
	Img     *string  `json:"img"`
	Color   *string  `json:"color"`
	Gender  *string  `json:"gender"`
	Size    *string  `json:"size"`
	Company *string  `json:"company"`
	Price   *float64 `json:"price"`
}

// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product doesn't exist"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Desc != nil {
			updates["desc"] = *input.Desc
		}
		if input.Img != nil {
			updates["img"] = *input.Img
		}
		if input.Color != nil {
			updates["color"] = *input.Color
		}
		if input.Gender != nil {
			updates["gender"] = *input.Gender
		}
		if input.Size != nil {
			updates["size"] = *input.Size
		}
		if input.Company != nil {
			updates["company"] = *input.Company
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}
		c.JSON(http.StatusOK, models.ExpandProduct(product))
	}
}
