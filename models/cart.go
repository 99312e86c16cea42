package models

import "time"

// Cart uses the owning user's id as its primary key, so there is at most one
// cart per user and the order endpoint can address the cart by user id.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is the unit of ownership transfer between a cart and an order.
// Exactly one of CartID/OrderID is set in any committed state: placement
// clears CartID and sets OrderID inside a single transaction.
type CartItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    *uint    `gorm:"index" json:"cartId,omitempty"`
	OrderID   *uint    `gorm:"index" json:"orderId,omitempty"`
	ProductID uint     `gorm:"not null" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	ItemTotal float64  `json:"itemTotal"`
}
