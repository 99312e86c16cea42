package productControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardrobe-shop/wardrobe-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetProducts(db))
	r.GET("/api/products/:id", GetProductByID(db))
	r.POST("/api/products", CreateProduct(db))
	r.PUT("/api/products/:id", UpdateProduct(db))
	r.DELETE("/api/products/:id", DeleteProduct(db))
	return r
}

func seedProducts(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		company := "wardrobe-essentials"
		if i%2 == 1 {
			company = "atelier-nord"
		}
		require.NoError(t, db.Create(&models.Product{
			Title:   fmt.Sprintf("Product %d", i+1),
			Desc:    "test",
			Img:     "a.jpg,b.jpg",
			Color:   "sand,olive",
			Gender:  "men,women",
			Size:    "S,M,L",
			Company: company,
			Price:   10,
		}).Error)
	}
}

func listProducts(t *testing.T, r *gin.Engine, path string) []models.ProductView {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var views []models.ProductView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	return views
}

func TestGetProductsReturnsAllExpanded(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)
	seedProducts(t, db, 3)

	views := listProducts(t, r, "/api/products")
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, v.Img)
		assert.Equal(t, []string{"S", "M", "L"}, v.Size)
		require.Len(t, v.Categories, 1)
		assert.Equal(t, []string{"sand", "olive"}, v.Categories[0].Color)
	}
}

func TestGetProductsNewReturnsLatestFive(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)
	seedProducts(t, db, 8)

	views := listProducts(t, r, "/api/products?new=true")
	require.Len(t, views, 5)
	// Descending creation order: newest first.
	for i := 1; i < len(views); i++ {
		assert.Greater(t, views[i-1].ID, views[i].ID)
	}
	assert.Equal(t, uint(8), views[0].ID)
}

func TestGetProductsCollectionFilter(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)
	seedProducts(t, db, 6)

	views := listProducts(t, r, "/api/products?collection=atelier-nord")
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, "atelier-nord", v.Company)
	}

	assert.Empty(t, listProducts(t, r, "/api/products?collection=atelier"))
}

func TestCreateProductRequiresFields(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductExpandsResponse(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	body := `{"title":"Tee","desc":"d","img":"a.jpg,b.jpg","color":"white,navy","gender":"men","size":"M,L","company":"wardrobe-essentials","price":29}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var view models.ProductView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, view.Img)
	assert.Equal(t, []string{"M", "L"}, view.Size)
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProductNotFound(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
