package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wardrobe-shop/wardrobe-api/locks"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
// The keyed mutex is shared between the order and address groups so all
// per-user multi-step mutations serialize on the same lock.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	userLocks := locks.NewKeyedMutex()

	SetupAuthRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, userLocks)
	SetupAddressRoutes(r, db, userLocks)
}
