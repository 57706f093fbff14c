package models

import "gorm.io/gorm"

// Order statuses. Every order starts Pending.
const (
	StatusPending   = "Pending"
	StatusOut       = "Out for delivery"
	StatusDelivered = "Delivered"
)

// OrderStatuses lists the valid statuses in display order.
var OrderStatuses = []string{StatusPending, StatusOut, StatusDelivered}

// ValidStatus reports whether s is one of the allowed order statuses.
func ValidStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Order links a customer to a product with a delivery status.
type Order struct {
	gorm.Model
	CustomerID uint   `gorm:"not null;index" json:"customer_id"`
	ProductID  uint   `gorm:"not null;index" json:"product_id"`
	Status     string `gorm:"size:50;not null;default:Pending" json:"status"`
	Note       string `gorm:"size:1000" json:"note"`

	Customer Customer `json:"customer,omitempty"`
	Product  Product  `json:"product,omitempty"`
}
