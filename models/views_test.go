package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitListRoundTrip(t *testing.T) {
	for _, s := range []string{
		"red",
		"red,green,blue",
		"S,M,L,XL",
		"",
	} {
		assert.Equal(t, s, strings.Join(SplitList(s), ","))
	}
}

func TestExpandProduct(t *testing.T) {
	p := Product{
		ID:      1,
		Title:   "Linen Overshirt",
		Img:     "a.jpg,b.jpg",
		Color:   "sand,olive",
		Gender:  "men,women",
		Size:    "S,M,L",
		Company: "wardrobe-essentials",
		Price:   59.9,
	}

	view := ExpandProduct(p)

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, view.Img)
	assert.Equal(t, []string{"S", "M", "L"}, view.Size)
	if assert.Len(t, view.Categories, 1) {
		assert.Equal(t, []string{"sand", "olive"}, view.Categories[0].Color)
		assert.Equal(t, []string{"men", "women"}, view.Categories[0].Gender)
	}
	assert.Equal(t, p.ID, view.Product.ID)
	assert.Equal(t, p.Price, view.Product.Price)
}

func TestNewCartView(t *testing.T) {
	cartID := uint(7)
	cart := Cart{
		ID: 7,
		Items: []CartItem{
			{
				ID:        11,
				CartID:    &cartID,
				ProductID: 1,
				Quantity:  2,
				ItemTotal: 20,
				Product:   &Product{ID: 1, Img: "a.jpg", Size: "M"},
			},
		},
	}

	view := NewCartView(cart)

	assert.Equal(t, uint(7), view.ID)
	if assert.Len(t, view.Products, 1) {
		line := view.Products[0]
		assert.Equal(t, uint(1), line.ID)
		assert.Equal(t, 2, line.Quantity)
		assert.Equal(t, 20.0, line.ItemTotal)
		assert.Equal(t, []string{"a.jpg"}, line.Product.Img)
	}
}

func TestNewCartViewEmptyCart(t *testing.T) {
	view := NewCartView(Cart{ID: 3})
	assert.Equal(t, uint(3), view.ID)
	assert.NotNil(t, view.Products)
	assert.Empty(t, view.Products)
}

func TestNewOrderView(t *testing.T) {
	order := Order{
		ID:     5,
		UserID: 7,
		Amount: 20,
		Items: []CartItem{
			{ID: 11, ProductID: 1, Quantity: 2, Product: &Product{ID: 1, Img: "a.jpg"}},
		},
	}

	view := NewOrderView(order)

	assert.Nil(t, view.Order.Items)
	if assert.Len(t, view.Products, 1) {
		assert.Equal(t, uint(1), view.Products[0].ID)
		assert.Equal(t, []string{"a.jpg"}, view.Products[0].Product.Img)
	}
}
