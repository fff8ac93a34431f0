package models

import "gorm.io/gorm"

// Delivery statuses an order moves through. Cancellation is reachable from
// any pre-shipped status; the refund branch only from completed.
const (
	StatusProcessing   = "processing"
	StatusPaid         = "paid"
	StatusShipping     = "shipping"
	StatusShipped      = "shipped"
	StatusCompleted    = "completed"
	StatusCancelled    = "cancelled"
	StatusRefund       = "refund"
	StatusRefunded     = "refunded"
	StatusRefundDenied = "refund_denied"
)

// Payment methods. Only wallet settlement is implemented; cash and transfer
// settlement with deferred service charges is a future extension.
const (
	PaymentWallet = "wallet"
)

// Order is one checked-out cart line. Orders checked out together share a
// TrackingNumber and are settled as one unit. Monetary invariants at
// creation: Amount = product cost + ShippingFee, and
// Amount = Credit + ServiceCharge + RiderCredit + RiderServiceCharge.
type Order struct {
	UniqueID           string  `json:"unique_id" gorm:"uniqueIndex;type:varchar(36)"`
	TrackingNumber     string  `json:"tracking_number" gorm:"index;type:varchar(36)"`
	UserID             string  `json:"user_id" gorm:"index;type:varchar(36)"`
	VendorID           string  `json:"vendor_id" gorm:"index;type:varchar(36)"`
	RiderID            string  `json:"rider_id" gorm:"index;type:varchar(36)"`
	ProductID          string  `json:"product_id" gorm:"type:varchar(36)"`
	ShippingFeeID      string  `json:"shipping_fee_id" gorm:"type:varchar(36)"`
	Quantity           int     `json:"quantity"`
	Amount             float64 `json:"amount"`
	ShippingFee        float64 `json:"shipping_fee"`
	Credit             float64 `json:"credit"`
	ServiceCharge      float64 `json:"service_charge"`
	RiderCredit        float64 `json:"rider_credit"`
	RiderServiceCharge float64 `json:"rider_service_charge"`
	PaymentMethod      string  `json:"payment_method" gorm:"type:varchar(20)"`
	Paid               bool    `json:"paid"`
	Shipped            bool    `json:"shipped"`
	Disputed           bool    `json:"disputed"`
	DeliveryStatus     string  `json:"delivery_status" gorm:"index;type:varchar(20)"`
	gorm.Model
}

// OrderHistory is the append-only audit trail: one row per state transition.
// Rows are created, never mutated or deleted.
type OrderHistory struct {
	OrderUniqueID string  `json:"order_unique_id" gorm:"index;type:varchar(36)"`
	OrderStatus   string  `json:"order_status" gorm:"type:varchar(20)"`
	Price         float64 `json:"price"`
	gorm.Model
}

// OrderCompleted is the denormalized snapshot taken exactly once when an
// order completes, decoupled from later product/address edits.
type OrderCompleted struct {
	OrderUniqueID string  `json:"order_unique_id" gorm:"uniqueIndex;type:varchar(36)"`
	ProductName   string  `json:"product_name" gorm:"type:varchar(100)"`
	ProductPrice  float64 `json:"product_price"`
	Quantity      int     `json:"quantity"`
	ShippingFee   float64 `json:"shipping_fee"`
	Address       string  `json:"address" gorm:"type:varchar(500)"`
	gorm.Model
}

// Dispute is a cancellation/refund claim tied to one order. Rows are created
// on post-payment cancellation, refund requests and refund denials; admin
// accept/deny only changes the parent order's delivery status.
type Dispute struct {
	OrderUniqueID string `json:"order_unique_id" gorm:"index;type:varchar(36)"`
	UserID        string `json:"user_id" gorm:"type:varchar(36)"`
	Message       string `json:"message" gorm:"type:varchar(500)"`
	gorm.Model
}
