package models

import "time"

// Marketplace roles. Vendors buy stock for their stalls, suppliers sell it.
const (
	RoleVendor   = "vendor"
	RoleSupplier = "supplier"
)

// User represents an authenticated marketplace account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	UserType     string    `json:"userType"`
	BusinessName string    `json:"businessName"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsVendor reports whether the account can hold a cart and place orders
func (u *User) IsVendor() bool {
	return u.UserType == RoleVendor
}

// IsSupplier reports whether the account lists products and manages orders
func (u *User) IsSupplier() bool {
	return u.UserType == RoleSupplier
}

// Location returns the "City, State" string used as the default delivery address
func (u *User) Location() string {
	if u.City == "" && u.State == "" {
		return ""
	}
	return u.City + ", " + u.State
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the token exchange returned by POST /auth/login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	UserType     string `json:"userType" binding:"required,oneof=vendor supplier"`
	BusinessName string `json:"businessName"`
	City         string `json:"city"`
	State        string `json:"state"`
}
