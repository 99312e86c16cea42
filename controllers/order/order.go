package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wardrobe-shop/wardrobe-api/apperrors"
	"github.com/wardrobe-shop/wardrobe-api/locks"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

type AddressRef struct {
	ID uint `json:"id" binding:"required"`
}

// Amount is a pointer so a pre-computed total of 0 (an empty cart) still
// binds; presence is checked in the handler instead of with a required tag,
// which would treat the zero value as missing.
type PlaceOrderInput struct {
	User    uint       `json:"user" binding:"required"`
	Amount  *float64   `json:"amount"`
	Address AddressRef `json:"address" binding:"required"`
}

type UpdateOrderInput struct {
	Amount    *float64 `json:"amount"`
	AddressID *uint    `json:"addressId"`
}

func newOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder converts a cart into an order. The cart's line items are
// detached from the cart and attached to the freshly created order inside a
// single transaction, so an item never belongs to both at once and a partial
// failure cannot leave items orphaned. The whole sequence is serialized per
// user through the keyed mutex.
//
// An empty cart is allowed and yields a zero-item order.
func PlaceOrder(db *gorm.DB, userLocks *locks.KeyedMutex, userID uint, amount float64, addressID uint) (*models.Order, error) {
	userLocks.Lock(userID)
	defer userLocks.Unlock(userID)

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").First(&cart, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart %d: %w", userID, apperrors.ErrNotFound)
			}
			return err
		}

		var address models.Address
		if err := tx.First(&address, addressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("address %d: %w", addressID, apperrors.ErrNotFound)
			}
			return err
		}
		if address.UserID != userID {
			return fmt.Errorf("address %d: %w", addressID, apperrors.ErrForbidden)
		}

		itemIDs := make([]uint, 0, len(cart.Items))
		for _, item := range cart.Items {
			itemIDs = append(itemIDs, item.ID)
		}

		// Detach every item from the cart before reattaching to the order.
		if len(itemIDs) > 0 {
			if err := tx.Model(&models.CartItem{}).Where("id IN ?", itemIDs).
				Update("cart_id", nil).Error; err != nil {
				return err
			}
		}

		order = models.Order{
			Reference: newOrderReference(),
			UserID:    userID,
			Amount:    amount,
			AddressID: addressID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if len(itemIDs) > 0 {
			if err := tx.Model(&models.CartItem{}).Where("id IN ?", itemIDs).
				Update("order_id", order.ID).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Items").First(&order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB, userLocks *locks.KeyedMutex) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Amount == nil {
			err := fmt.Errorf("amount is required: %w", apperrors.ErrValidation)
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		userID, _ := c.Get("user_id")
		isAdmin, _ := c.Get("is_admin")
		if isAdmin != true && userID != input.User {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
			return
		}

		order, err := PlaceOrder(db, userLocks, input.User, *input.Amount, input.Address.ID)
		if err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}

		BroadcastOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at desc").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id — all orders of one user, with address and expanded
// product views.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		var orders []models.Order
		if err := db.Where("user_id = ?", id).
			Preload("Address").
			Preload("Items.Product").
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		views := make([]models.OrderView, 0, len(orders))
		for _, order := range orders {
			views = append(views, models.NewOrderView(order))
		}
		c.JSON(http.StatusOK, views)
	}
}

// PUT /api/orders/:id
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order doesn't exist"})
			return
		}

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Amount != nil {
			updates["amount"] = *input.Amount
		}
		if input.AddressID != nil {
			updates["address_id"] = *input.AddressID
		}
		if len(updates) > 0 {
			if err := db.Model(&order).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			result := tx.Delete(&models.Order{}, id)
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
				c.JSON(http.StatusNotFound, gin.H{"error": "Order doesn't exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order is successfully deleted"})
	}
}
