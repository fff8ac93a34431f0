package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// MarkPaid settles payment for every order in a tracking group as one atomic
// unit. Wallet settlement only: the buyer's balance must cover the group
// total. Per order it credits the vendor and rider their checkout-split
// earnings, decrements stock and appends one transaction row per party.
// Calling it again on the same tracking number fails with ErrAlreadyPaid
// and moves no money.
func (s *SettlementService) MarkPaid(userID, trackingNumber string) ([]string, error) {
	var paidIDs []string
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		orders, err := store.OrdersByTracking(trackingNumber)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return fmt.Errorf("orders for tracking %s: %w", trackingNumber, repositories.ErrNotFound)
		}

		// Validate the whole group before touching any balance. Stock is
		// checked against the quantity required across the group, so two
		// orders of the same product cannot each pass individually while
		// jointly overdrawing it.
		var total float64
		required := make(map[string]int)
		for _, order := range orders {
			if order.UserID != userID {
				return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotOwner)
			}
			if order.Paid {
				return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyPaid)
			}
			if order.DeliveryStatus == models.StatusCancelled {
				return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyCancelled)
			}
			if order.DeliveryStatus != models.StatusProcessing {
				return fmt.Errorf("order %s in status %s cannot be paid", order.UniqueID, order.DeliveryStatus)
			}
			if order.PaymentMethod != models.PaymentWallet {
				return fmt.Errorf("order %s: %w", order.UniqueID, ErrUnsupportedPayment)
			}
			product, err := store.Product(order.ProductID)
			if err != nil {
				return err
			}
			required[product.ID] += order.Quantity
			if product.Remaining < required[product.ID] {
				return fmt.Errorf("product %s: %w", product.ID, ErrInsufficientStock)
			}
			if _, err := store.ShippingFee(order.ShippingFeeID); err != nil {
				return err
			}
			total += order.Amount
		}

		user, err := store.User(userID)
		if err != nil {
			return err
		}
		if user.Balance < total {
			return fmt.Errorf("need %.2f, have %.2f: %w", total, user.Balance, ErrInsufficientFunds)
		}

		// Apply. Accounts and products are memoized, so repeated vendors or
		// riders across the group accumulate additively.
		user.Balance -= total
		for _, order := range orders {
			product, err := store.Product(order.ProductID)
			if err != nil {
				return err
			}
			product.Remaining -= order.Quantity

			vendor, err := store.Vendor(order.VendorID)
			if err != nil {
				return err
			}
			vendor.Balance += order.Credit
			vendor.ServiceCharge += order.ServiceCharge

			rider, err := store.Rider(order.RiderID)
			if err != nil {
				return err
			}
			rider.Balance += order.RiderCredit
			rider.ServiceCharge += order.RiderServiceCharge

			order.Paid = true
			order.DeliveryStatus = models.StatusPaid
			if err := history(store, order, models.StatusPaid); err != nil {
				return err
			}
			if err := store.AddUserTransaction(&models.UserTransaction{
				UserID:        order.UserID,
				OrderUniqueID: order.UniqueID,
				Type:          models.TxPayment,
				Amount:        order.Amount,
				Status:        models.TxCompleted,
				Details:       "wallet payment for order",
			}); err != nil {
				return err
			}
			if err := store.AddVendorTransaction(&models.VendorTransaction{
				VendorID:      order.VendorID,
				OrderUniqueID: order.UniqueID,
				Type:          models.TxPayment,
				Amount:        order.Credit,
				Status:        models.TxCompleted,
				Details:       "credit for paid order",
			}); err != nil {
				return err
			}
			if err := store.AddRiderTransaction(&models.RiderTransaction{
				RiderID:       order.RiderID,
				OrderUniqueID: order.UniqueID,
				Type:          models.TxPayment,
				Amount:        order.RiderCredit,
				Status:        models.TxCompleted,
				Details:       "credit for paid delivery",
			}); err != nil {
				return err
			}
			paidIDs = append(paidIDs, order.UniqueID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("order.paid", map[string]interface{}{
		"trackingNumber": trackingNumber,
		"userID":         userID,
		"orderIDs":       paidIDs,
	})
	return paidIDs, nil
}
