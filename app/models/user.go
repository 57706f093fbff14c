package models

import "gorm.io/gorm"

// Roles assignable to a user account.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a login account. Customer accounts carry a Customer profile row;
// admin accounts do not.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email    string `gorm:"size:255;not null"             json:"email"`
	Password string `gorm:"size:255;not null"             json:"-"` // hashed, never serialised
	Role     string `gorm:"size:50;not null;default:customer" json:"role"`

	Customer *Customer `json:"customer,omitempty"`
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
