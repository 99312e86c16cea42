package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

type CartLineInput struct {
	ID        uint    `json:"id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	ItemTotal float64 `json:"itemTotal"`
}

type CartInput struct {
	ID       uint            `json:"id" binding:"required"`
	Products []CartLineInput `json:"products"`
}

// MaterializeCart loads a cart with its line items and expands every product
// into its wire form. A missing cart is not an error: the caller receives a
// nil view.
func MaterializeCart(db *gorm.DB, cartID uint) (*models.CartView, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").First(&cart, cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	view := models.NewCartView(cart)
	return &view, nil
}

// GET /api/cart
func GetAllCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var carts []models.Cart
		if err := db.Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// GET /api/cart/:id
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}
		view, err := MaterializeCart(db, uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if view == nil {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /api/cart
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart := models.Cart{ID: input.ID}
		for _, line := range input.Products {
			cartID := input.ID
			cart.Items = append(cart.Items, models.CartItem{
				CartID:    &cartID,
				ProductID: line.ID,
				Quantity:  line.Quantity,
				ItemTotal: line.ItemTotal,
			})
		}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}

		view, err := MaterializeCart(db, cart.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// UpdateCart replaces the cart's items wholesale: the previous set is
// deleted and the submitted one recreated, in one transaction. There is no
// incremental merge.
//
// PUT /api/cart/:id
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}

		var input struct {
			Products []CartLineInput `json:"products"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cartID := uint(id)
		err = db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.First(&cart, cartID).Error; err != nil {
				return err
			}
			if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			for _, line := range input.Products {
				item := models.CartItem{
					CartID:    &cartID,
					ProductID: line.ID,
					Quantity:  line.Quantity,
					ItemTotal: line.ItemTotal,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart doesn't exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		view, err := MaterializeCart(db, cartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /api/cart/:id
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			result := tx.Delete(&models.Cart{}, id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart doesn't exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart is successfully deleted"})
	}
}
