package models

import "gorm.io/gorm"

// Actor roles carried in JWT claims and checked per route group.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleRider    = "rider"
	RoleAdmin    = "admin"
)

// User represents a customer of the marketplace. Balance is the wallet used
// for settlement; ServiceCharge accumulates amounts owed to the platform.
// Both are mutated only inside settlement transactions.
type User struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username      string  `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email         string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password      string  `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Balance       float64 `json:"balance" validate:"gte=0"`
	ServiceCharge float64 `json:"service_charge"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Vendor represents a seller account. Credit from paid orders lands in
// Balance; the platform's retained cut (and any claw-back shortfall) in
// ServiceCharge.
type Vendor struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email         string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password      string  `gorm:"type:varchar(255)" validate:"required,min=6"`
	Balance       float64 `json:"balance" validate:"gte=0"`
	ServiceCharge float64 `json:"service_charge"`
	gorm.Model
}

// Rider represents a courier account, settled the same way as a vendor but
// against shipping fees.
type Rider struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email         string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password      string  `gorm:"type:varchar(255)" validate:"required,min=6"`
	Balance       float64 `json:"balance" validate:"gte=0"`
	ServiceCharge float64 `json:"service_charge"`
	gorm.Model
}

// Address is a buyer's delivery address; checkout requires one default
// address per user.
type Address struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	Details   string `json:"details" gorm:"type:varchar(500)" validate:"required,max=500"`
	IsDefault bool   `json:"is_default"`
	gorm.Model
}
