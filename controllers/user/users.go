package userControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/gorm"
)

// GET /api/users/find/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User doesn't exist"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /api/users?new=true
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.User{})
		if c.Query("new") != "" {
			query = query.Order("id desc").Limit(5)
		}
		var users []models.User
		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

type MonthlySignups struct {
	ID    int   `json:"id"`
	Total int64 `json:"total"`
}

// GET /api/users/stats
//
// Signup counts per calendar month over the trailing year, for the admin
// dashboard chart.
func GetUserStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lastYear := time.Now().AddDate(-1, 0, 0)
		var stats []MonthlySignups
		err := db.Raw(
			`SELECT EXTRACT(MONTH FROM created_at)::int AS id, COUNT(*) AS total
			 FROM users WHERE created_at >= ? GROUP BY 1 ORDER BY 1`,
			lastYear,
		).Scan(&stats).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate signups"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
