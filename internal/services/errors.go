package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for illegal state transitions and failed business guards.
// Every guard is checked before any mutation, so a returned sentinel means
// nothing was written.
var (
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrAlreadyCancelled   = errors.New("order is already cancelled")
	ErrAlreadyShipped     = errors.New("order is already shipped")
	ErrAlreadyInTransit   = errors.New("order is already in transit")
	ErrAlreadyCompleted   = errors.New("order is already completed")
	ErrAlreadyDisputed    = errors.New("order is already disputed for refund")
	ErrNotPaid            = errors.New("order is not paid")
	ErrNotInTransit       = errors.New("order is not in transit")
	ErrNotShipped         = errors.New("order is not shipped")
	ErrNotCompleted       = errors.New("order is not completed")
	ErrNotRefundable      = errors.New("order is not awaiting refund")
	ErrNotOwner           = errors.New("actor does not own this resource")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrUnsupportedPayment = errors.New("unsupported payment method")
	ErrNoDefaultAddress   = errors.New("buyer has no default address")
)

// CheckoutError itemizes why a batch checkout was rejected. Counts are per
// failure category across the whole cart set; any non-zero count means zero
// orders were created.
type CheckoutError struct {
	MissingCart       int
	MissingProduct    int
	MissingVendor     int
	MissingShipping   int
	InsufficientStock int
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf(
		"checkout rejected: %d missing cart items, %d missing products, %d missing vendors, %d missing shipping quotes, %d with insufficient stock",
		e.MissingCart, e.MissingProduct, e.MissingVendor, e.MissingShipping, e.InsufficientStock,
	)
}

// Any reports whether any cart line failed validation.
func (e *CheckoutError) Any() bool {
	return e.MissingCart+e.MissingProduct+e.MissingVendor+e.MissingShipping+e.InsufficientStock > 0
}
