package models

import "strings"

// Response-boundary views. Products are stored with comma-joined multi-value
// fields; clients always receive them as arrays. The expansion lives here so
// the catalog listing, the cart view and the order view all share one
// implementation.

type CategoryView struct {
	Color  []string `json:"color"`
	Gender []string `json:"gender"`
}

type ProductView struct {
	Product
	Img        []string       `json:"img"`
	Categories []CategoryView `json:"categories"`
	Size       []string       `json:"size"`
}

type CartLineView struct {
	ID        uint        `json:"id"`
	Quantity  int         `json:"quantity"`
	ItemTotal float64     `json:"itemTotal"`
	Product   ProductView `json:"product"`
}

type CartView struct {
	ID       uint           `json:"id"`
	Products []CartLineView `json:"products"`
}

type OrderView struct {
	Order
	Products []CartLineView `json:"products"`
}

// SplitList splits a comma-joined storage value into its wire form. The
// round trip is lossless as long as no value itself contains a comma.
func SplitList(s string) []string {
	return strings.Split(s, ",")
}

func ExpandProduct(p Product) ProductView {
	return ProductView{
		Product: p,
		Img:     SplitList(p.Img),
		Categories: []CategoryView{{
			Color:  SplitList(p.Color),
			Gender: SplitList(p.Gender),
		}},
		Size: SplitList(p.Size),
	}
}

func ExpandProducts(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ExpandProduct(p))
	}
	return views
}

func expandLines(items []CartItem) []CartLineView {
	lines := make([]CartLineView, 0, len(items))
	for _, item := range items {
		var product Product
		if item.Product != nil {
			product = *item.Product
		}
		lines = append(lines, CartLineView{
			ID:        item.ProductID,
			Quantity:  item.Quantity,
			ItemTotal: item.ItemTotal,
			Product:   ExpandProduct(product),
		})
	}
	return lines
}

func NewCartView(cart Cart) CartView {
	return CartView{ID: cart.ID, Products: expandLines(cart.Items)}
}

func NewOrderView(order Order) OrderView {
	lines := expandLines(order.Items)
	order.Items = nil
	return OrderView{Order: order, Products: lines}
}
