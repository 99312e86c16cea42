package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const seedJSON = `{
  "admin": {
    "firstname": "Ada",
    "lastname": "Stone",
    "username": "admin",
    "email": "admin@wardrobe.shop",
    "password": "changeme"
  },
  "products": [
    {"title": "Tee", "desc": "d", "img": "a.jpg", "color": "white", "gender": "men", "size": "M", "company": "wardrobe-essentials", "price": 29},
    {"title": "Skirt", "desc": "d", "img": "b.jpg", "color": "black", "gender": "women", "size": "S", "company": "atelier-nord", "price": 74.5}
  ]
}`

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

func writeSeedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o644))
	return path
}

func TestLoadCreatesAdminAndProducts(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Load(db, writeSeedFile(t)))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@wardrobe.shop").First(&admin).Error)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("changeme")))

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, 2, products)
}

func TestLoadTwiceDoesNotDuplicate(t *testing.T) {
	db := openTestDB(t)
	path := writeSeedFile(t)

	require.NoError(t, Load(db, path))
	require.NoError(t, Load(db, path))

	var users, products int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 2, products)
}

func TestLoadMissingFile(t *testing.T) {
	db := openTestDB(t)
	assert.Error(t, Load(db, filepath.Join(t.TempDir(), "nope.json")))
}
