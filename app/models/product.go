package models

import "gorm.io/gorm"

// Product categories.
const (
	CategoryIndoor  = "Indoor"
	CategoryOutdoor = "Out Door"
)

// Tag labels products for filtering.
type Tag struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// Product represents an item a customer can order.
type Product struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Price       float64 `gorm:"not null;default:0"      json:"price"`
	Category    string  `gorm:"size:100"                json:"category"`
	Description string  `gorm:"type:text"               json:"description"`
	Image       string  `gorm:"size:500"                json:"image"` // storage path, empty when unset

	Tags []Tag `gorm:"many2many:product_tags;" json:"tags,omitempty"`
}
