package addressControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/apperrors"
	"github.com/wardrobe-shop/wardrobe-api/locks"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

// PromoteDefault marks one address as the user's default and clears the flag
// on every other address the user owns, as a single transactional batch. No
// matter how many addresses carried the flag before, exactly one does after.
// Serialized per user through the keyed mutex.
func PromoteDefault(db *gorm.DB, userLocks *locks.KeyedMutex, userID, addressID uint) ([]models.Address, error) {
	userLocks.Lock(userID)
	defer userLocks.Unlock(userID)

	err := db.Transaction(func(tx *gorm.DB) error {
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

		if err := tx.Model(&models.Address{}).
			Where("user_id = ? AND id <> ?", userID, addressID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Address{}).
			Where("id = ?", addressID).
			Update("is_default", true).Error
	})
	if err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err := db.Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// PUT /api/address/default/:id
func SetDefaultAddress(db *gorm.DB, userLocks *locks.KeyedMutex) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
			return
		}

		userID := c.GetUint("user_id")

		// Admins may promote on behalf of another user.
		var input struct {
			User *uint `json:"user"`
		}
		if err := c.ShouldBindJSON(&input); err == nil && input.User != nil {
			isAdmin, _ := c.Get("is_admin")
			if isAdmin != true && *input.User != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
				return
			}
			userID = *input.User
		}

		addresses, err := PromoteDefault(db, userLocks, userID, uint(id))
		if err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}
