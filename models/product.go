package models

import "time"

// Product keeps its multi-value attributes (img, color, gender, size) as
// comma-joined strings in storage. They are split into arrays only at the
// response boundary, see views.go.
type Product struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title   string  `gorm:"not null" json:"title"`
	Desc    string  `gorm:"not null" json:"desc"`
	Img     string  `gorm:"not null" json:"-"`
	Color   string  `json:"-"`
	Gender  string  `json:"-"`
	Size    string  `json:"-"`
	Company string  `gorm:"not null" json:"company"`
	Price   float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
