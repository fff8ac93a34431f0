package services

import (
	"fmt"

	"pasar/internal/ledger"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// DisputeForRefund opens the refund flow on a completed order. The order is
// marked disputed and moved to the refund state; money only moves if an
// admin later accepts.
func (s *SettlementService) DisputeForRefund(userID, orderID, message string) error {
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		order, err := store.Order(orderID)
		if err != nil {
			return err
		}
		if order.UserID != userID {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotOwner)
		}
		if order.DeliveryStatus == models.StatusRefund {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyDisputed)
		}
		if order.DeliveryStatus == models.StatusRefunded || order.DeliveryStatus == models.StatusRefundDenied {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotRefundable)
		}
		if !order.Paid || !order.Shipped || order.DeliveryStatus != models.StatusCompleted {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotCompleted)
		}

		order.Disputed = true
		order.DeliveryStatus = models.StatusRefund
		if err := store.AddDispute(&models.Dispute{
			OrderUniqueID: order.UniqueID,
			UserID:        userID,
			Message:       message,
		}); err != nil {
			return err
		}
		return history(store, order, models.StatusRefund)
	})
	if err != nil {
		return err
	}

	s.publish("order.refund_requested", map[string]interface{}{
		"orderID": orderID,
		"userID":  userID,
	})
	return nil
}

// AcceptRefund settles an admin-approved refund: the vendor and rider are
// clawed back their shares of the refund cut (shortfall into
// service_charge), the buyer is credited the net refundable amount, stock is
// restored and the order moves to refunded.
func (s *SettlementService) AcceptRefund(orderID string) (*models.Order, error) {
	var refunded *models.Order
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		order, err := store.Order(orderID)
		if err != nil {
			return err
		}
		if order.DeliveryStatus != models.StatusRefund {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotRefundable)
		}
		dispute, err := store.LatestDispute(order.UniqueID)
		if err != nil {
			return err
		}

		split := ledger.SplitRefund(order.Amount, order.ShippingFee, s.rates)

		vendor, err := store.Vendor(order.VendorID)
		if err != nil {
			return err
		}
		debit, shortfall := ledger.Clawback(vendor.Balance, split.VendorClaw)
		vendor.Balance -= debit
		vendor.ServiceCharge += shortfall

		rider, err := store.Rider(order.RiderID)
		if err != nil {
			return err
		}
		debit, shortfall = ledger.Clawback(rider.Balance, split.RiderClaw)
		rider.Balance -= debit
		rider.ServiceCharge += shortfall

		user, err := store.User(order.UserID)
		if err != nil {
			return err
		}
		user.Balance += split.UserCredit

		product, err := store.Product(order.ProductID)
		if err != nil {
			return err
		}
		product.Remaining += order.Quantity

		order.DeliveryStatus = models.StatusRefunded

		if err := store.AddUserTransaction(&models.UserTransaction{
			UserID:        order.UserID,
			OrderUniqueID: order.UniqueID,
			Type:          models.TxRefund,
			Amount:        split.UserCredit,
			Status:        models.TxCompleted,
			Details:       dispute.Message,
		}); err != nil {
			return err
		}
		if err := store.AddVendorTransaction(&models.VendorTransaction{
			VendorID:      order.VendorID,
			OrderUniqueID: order.UniqueID,
			Type:          models.TxCompensation,
			Amount:        split.VendorClaw,
			Status:        models.TxCompleted,
			Details:       "claw-back for refunded order",
		}); err != nil {
			return err
		}
		if err := store.AddRiderTransaction(&models.RiderTransaction{
			RiderID:       order.RiderID,
			OrderUniqueID: order.UniqueID,
			Type:          models.TxCompensation,
			Amount:        split.RiderClaw,
			Status:        models.TxCompleted,
			Details:       "claw-back for refunded delivery",
		}); err != nil {
			return err
		}
		if err := history(store, order, models.StatusRefunded); err != nil {
			return err
		}
		refunded = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("order.refunded", map[string]interface{}{
		"orderID": orderID,
	})
	return refunded, nil
}

// DenyRefund closes the refund flow without moving money. The admin's
// feedback is recorded as a dispute row.
func (s *SettlementService) DenyRefund(orderID, feedback string) error {
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		order, err := store.Order(orderID)
		if err != nil {
			return err
		}
		if order.DeliveryStatus != models.StatusRefund {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotRefundable)
		}

		order.DeliveryStatus = models.StatusRefundDenied
		if err := store.AddDispute(&models.Dispute{
			OrderUniqueID: order.UniqueID,
			UserID:        order.UserID,
			Message:       feedback,
		}); err != nil {
			return err
		}
		return history(store, order, models.StatusRefundDenied)
	})
	if err != nil {
		return err
	}

	s.publish("order.refund_denied", map[string]interface{}{
		"orderID": orderID,
	})
	return nil
}
