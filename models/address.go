package models

import "time"

// Address invariant: at most one address per user has IsDefault set. The
// toggle is enforced by the default-address controller, not by the model.
type Address struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint   `gorm:"not null;index" json:"user"`
	Firstname     string `gorm:"not null" json:"firstname"`
	Lastname      string `gorm:"not null" json:"lastname"`
	Phone         string `gorm:"not null" json:"phone"`
	StreetAddress string `gorm:"not null" json:"streetAddress"`
	City          string `gorm:"not null" json:"city"`
	State         string `gorm:"not null" json:"state"`
	PostalCode    string `json:"postalCode"`
	IsDefault     bool   `gorm:"default:false" json:"isDefault"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
