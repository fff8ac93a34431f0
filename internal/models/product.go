package models

import "gorm.io/gorm"

// Cart statuses.
const (
	CartActive     = "active"
	CartCheckedOut = "checked_out"
)

// Product represents a vendor's product. Remaining is decremented when an
// order is paid and restored on cancellation or refund.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	VendorID    string  `json:"vendor_id" gorm:"index;type:varchar(36)" validate:"required"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Remaining   int     `json:"remaining" validate:"gte=0"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Cart is one line in a buyer's cart. Checkout flips Status to checked_out;
// the row is kept, not deleted.
type Cart struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID        string `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID     string `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	ShippingFeeID string `json:"shipping_fee_id" gorm:"type:varchar(36)" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	Status        string `json:"status" gorm:"index;type:varchar(20)"`
	gorm.Model
}

// ShippingFee is a rider's delivery quote. The rider that owns the quote is
// the only one allowed to move the order through the shipping states.
type ShippingFee struct {
	ID      string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	RiderID string  `json:"rider_id" gorm:"index;type:varchar(36)" validate:"required"`
	Fee     float64 `json:"fee" validate:"required,gt=0"`
	gorm.Model
}
