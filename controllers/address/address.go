package addressControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

type AddressInput struct {
	User          uint   `json:"user" binding:"required"`
	Firstname     string `json:"firstname" binding:"required"`
	Lastname      string `json:"lastname" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	StreetAddress string `json:"streetAddress" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	PostalCode    string `json:"postalCode"`
}

type UpdateAddressInput struct {
	Firstname     *string `json:"firstname"`
	Lastname      *string `json:"lastname"`
	Phone         *string `json:"phone"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postalCode"`
}

// GET /api/address
func GetAllAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.Address
		if err := db.Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// GET /api/address/:id — all addresses of one user.
func GetUserAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var addresses []models.Address
		if err := db.Where("user_id = ?", id).Order("id").Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /api/address
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userID, _ := c.Get("user_id")
		isAdmin, _ := c.Get("is_admin")
		if isAdmin != true && userID != input.User {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
			return
		}

		address := models.Address{
			UserID:        input.User,
			Firstname:     input.Firstname,
			Lastname:      input.Lastname,
			Phone:         input.Phone,
			StreetAddress: input.StreetAddress,
			City:          input.City,
			State:         input.State,
			PostalCode:    input.PostalCode,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// PUT /api/address/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
			return
		}

		var address models.Address
		if err := db.First(&address, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address doesn't exist"})
			return
		}

		userID, _ := c.Get("user_id")
		isAdmin, _ := c.Get("is_admin")
		if isAdmin != true && userID != address.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
			return
		}

		var input UpdateAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Firstname != nil {
			updates["firstname"] = *input.Firstname
		}
		if input.Lastname != nil {
			updates["lastname"] = *input.Lastname
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.StreetAddress != nil {
			updates["street_address"] = *input.StreetAddress
		}
		if input.City != nil {
			updates["city"] = *input.City
		}
		if input.State != nil {
			updates["state"] = *input.State
		}
		if input.PostalCode != nil {
			updates["postal_code"] = *input.PostalCode
		}

		if len(updates) > 0 {
			if err := db.Model(&address).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
				return
			}
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /api/address/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
			return
		}

		var address models.Address
		if err := db.First(&address, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address doesn't exist"})
			return
		}

		userID, _ := c.Get("user_id")
		isAdmin, _ := c.Get("is_admin")
		if isAdmin != true && userID != address.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
			return
		}

		if err := db.Delete(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address is successfully deleted"})
	}
}
