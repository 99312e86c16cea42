package models

import "time"

type Order struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string     `gorm:"uniqueIndex" json:"reference"`
	UserID    uint       `gorm:"not null;index" json:"user"`
	Amount    float64    `gorm:"not null" json:"amount"`
	AddressID uint       `gorm:"not null" json:"addressId"`
	Address   *Address   `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Items     []CartItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
