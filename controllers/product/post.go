package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

// Multi-value fields arrive comma-joined and are stored as-is; they are
// split only on the way out.
type ProductInput struct {
	Title   string  `json:"title" binding:"required"`
	Desc    string  `json:"desc" binding:"required"`
	Img     string  `json:"img" binding:"required"`
	Color   string  `json:"color"`
	Gender  string  `json:"gender"`
	Size    string  `json:"size"`
	Company string  `json:"company" binding:"required"`
	Price   float64 `json:"price" binding:"required"`
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Title:   input.Title,
			Desc:    input.Desc,
			Img:     input.Img,
			Color:   input.Color,
			Gender:  input.Gender,
			Size:    input.Size,
			Company: input.Company,
			Price:   input.Price,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, models.ExpandProduct(product))
	}
}
