package models

import "gorm.io/gorm"

// Transaction types and statuses. Transaction rows are an append-only
// ledger: created by settlement operations, never updated or deleted.
const (
	TxPayment      = "payment"
	TxRefund       = "refund"
	TxCompensation = "compensation"

	TxCompleted = "completed"
)

// UserTransaction records a wallet debit or credit for a customer.
type UserTransaction struct {
	UserID        string  `json:"user_id" gorm:"index;type:varchar(36)"`
	OrderUniqueID string  `json:"order_unique_id" gorm:"index;type:varchar(36)"`
	Type          string  `json:"type" gorm:"type:varchar(20)"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status" gorm:"type:varchar(20)"`
	Details       string  `json:"details" gorm:"type:varchar(255)"`
	gorm.Model
}

// VendorTransaction records a credit or claw-back against a vendor account.
type VendorTransaction struct {
	VendorID      string  `json:"vendor_id" gorm:"index;type:varchar(36)"`
	OrderUniqueID string  `json:"order_unique_id" gorm:"index;type:varchar(36)"`
	Type          string  `json:"type" gorm:"type:varchar(20)"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status" gorm:"type:varchar(20)"`
	Details       string  `json:"details" gorm:"type:varchar(255)"`
	gorm.Model
}

// RiderTransaction records a credit or claw-back against a rider account.
type RiderTransaction struct {
	RiderID       string  `json:"rider_id" gorm:"index;type:varchar(36)"`
	OrderUniqueID string  `json:"order_unique_id" gorm:"index;type:varchar(36)"`
	Type          string  `json:"type" gorm:"type:varchar(20)"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status" gorm:"type:varchar(20)"`
	Details       string  `json:"details" gorm:"type:varchar(255)"`
	gorm.Model
}
