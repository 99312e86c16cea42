package orderControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardrobe-shop/wardrobe-api/apperrors"
	"github.com/wardrobe-shop/wardrobe-api/locks"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Cart{},
		&models.CartItem{}, &models.Order{}, &models.Address{},
	))
	return db
}

func seedCart(t *testing.T, db *gorm.DB, cartID uint, lines int) []models.CartItem {
	t.Helper()
	require.NoError(t, db.Create(&models.Cart{ID: cartID}).Error)
	items := make([]models.CartItem, 0, lines)
	for i := 0; i < lines; i++ {
		product := models.Product{
			Title:   fmt.Sprintf("Product %d", i+1),
			Desc:    "test",
			Img:     "a.jpg,b.jpg",
			Company: "wardrobe-essentials",
			Price:   10,
		}
		require.NoError(t, db.Create(&product).Error)
		id := cartID
		item := models.CartItem{
			CartID:    &id,
			ProductID: product.ID,
			Quantity:  2,
			ItemTotal: 20,
		}
		require.NoError(t, db.Create(&item).Error)
		items = append(items, item)
	}
	return items
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) models.Address {
	t.Helper()
	address := models.Address{
		UserID:        userID,
		Firstname:     "Ada",
		Lastname:      "Stone",
		Phone:         "555-0100",
		StreetAddress: "1 Main St",
		City:          "Springfield",
		State:         "IL",
	}
	require.NoError(t, db.Create(&address).Error)
	return address
}

func TestPlaceOrderMovesItems(t *testing.T) {
	db := openTestDB(t)
	userLocks := locks.NewKeyedMutex()

	seedCart(t, db, 7, 1)
	address := seedAddress(t, db, 7)

	order, err := PlaceOrder(db, userLocks, 7, 20, address.ID)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 20.0, order.Items[0].ItemTotal)
	assert.Nil(t, order.Items[0].CartID)
	require.NotNil(t, order.Items[0].OrderID)
	assert.Equal(t, order.ID, *order.Items[0].OrderID)
	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, 20.0, order.Amount)
	assert.NotEmpty(t, order.Reference)

	// The source cart must be left empty: ownership moved, nothing copied.
	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", 7).Count(&remaining).Error)
	assert.Zero(t, remaining)

	var total int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestPlaceOrderMovesAllItems(t *testing.T) {
	db := openTestDB(t)
	userLocks := locks.NewKeyedMutex()

	seedCart(t, db, 4, 3)
	address := seedAddress(t, db, 4)

	order, err := PlaceOrder(db, userLocks, 4, 60, address.ID)
	require.NoError(t, err)
	assert.Len(t, order.Items, 3)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", 4).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)
	userLocks := locks.NewKeyedMutex()

	seedCart(t, db, 9, 0)
	address := seedAddress(t, db, 9)

	order, err := PlaceOrder(db, userLocks, 9, 0, address.ID)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
}

func TestPlaceOrderCartNotFound(t *testing.T) {
	db := openTestDB(t)
	userLocks := locks.NewKeyedMutex()

	_, err := PlaceOrder(db, userLocks, 42, 20, 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 404, apperrors.StatusCode(err))
}

func TestPlaceOrderAddressNotFound(t *testing.T) {
	db := openTestDB(t)
	userLocks := locks.NewKeyedMutex()

	seedCart(t, db, 7, 1)

	_, err := PlaceOrder(db, userLocks, 7, 20, 99)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPlaceOrderForeignAddress(t *testing.T) {
	db := openTestDB(t)
	userLocks := locks.NewKeyedMutex()

	seedCart(t, db, 7, 1)
	address := seedAddress(t, db, 8) // someone else's address

	_, err := PlaceOrder(db, userLocks, 7, 20, address.ID)
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	// Nothing moved on failure.
	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", 7).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}
