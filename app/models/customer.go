package models

import "gorm.io/gorm"

// Customer is the profile attached one-to-one to a customer user.
type Customer struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex;not null"  json:"user_id"`
	Name       string `gorm:"size:255;not null;index" json:"name"`
	Phone      string `gorm:"size:50"               json:"phone"`
	Email      string `gorm:"size:255"              json:"email"`
	Address    string `gorm:"size:500"              json:"address"`
	ProfilePic string `gorm:"size:500"              json:"profile_pic"` // storage path, empty when unset

	Orders []Order `json:"orders,omitempty"`
}
