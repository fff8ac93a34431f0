package services

import (
	"fmt"

	"pasar/internal/ledger"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CancelByTracking cancels every order in a tracking group as one atomic
// unit. Partial cancellation across the group never happens: one illegal
// order aborts the whole batch.
func (s *SettlementService) CancelByTracking(userID, trackingNumber string) ([]string, error) {
	var cancelledIDs []string
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		orders, err := store.OrdersByTracking(trackingNumber)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return fmt.Errorf("orders for tracking %s: %w", trackingNumber, repositories.ErrNotFound)
		}
		for _, order := range orders {
			if err := guardCancellable(userID, order); err != nil {
				return err
			}
		}
		for _, order := range orders {
			if err := s.cancelOrder(store, order); err != nil {
				return err
			}
			cancelledIDs = append(cancelledIDs, order.UniqueID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("order.cancelled", map[string]interface{}{
		"trackingNumber": trackingNumber,
		"userID":         userID,
		"orderIDs":       cancelledIDs,
	})
	return cancelledIDs, nil
}

// CancelOne cancels a single order.
func (s *SettlementService) CancelOne(userID, orderID string) (string, error) {
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		order, err := store.Order(orderID)
		if err != nil {
			return err
		}
		if err := guardCancellable(userID, order); err != nil {
			return err
		}
		return s.cancelOrder(store, order)
	})
	if err != nil {
		return "", err
	}

	s.publish("order.cancelled", map[string]interface{}{
		"userID":   userID,
		"orderIDs": []string{orderID},
	})
	return orderID, nil
}

// guardCancellable checks ownership and that the order has not shipped or
// already been cancelled. Cancellation is legal from any pre-shipped state.
func guardCancellable(userID string, order *models.Order) error {
	if order.UserID != userID {
		return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotOwner)
	}
	if order.DeliveryStatus == models.StatusCancelled {
		return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyCancelled)
	}
	if order.Shipped || order.DeliveryStatus == models.StatusShipping {
		return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyShipped)
	}
	return nil
}

// cancelOrder applies one order's cancellation inside the settlement unit.
// A paid order is restocked, the vendor and rider are clawed back their
// cancellation shares (shortfall into service_charge, balance never below
// zero) and the buyer is refunded the amount minus the platform take. An
// order that was never paid moves no stock and no money; only the audit
// trail and a dispute row are written.
func (s *SettlementService) cancelOrder(store repositories.SettlementStore, order *models.Order) error {
	if order.Paid {
		product, err := store.Product(order.ProductID)
		if err != nil {
			return err
		}
		product.Remaining += order.Quantity

		split := ledger.SplitCancellation(order.Amount, s.rates)

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
		user.Balance += split.UserRefund

		if err := store.AddUserTransaction(&models.UserTransaction{
			UserID:        order.UserID,
			OrderUniqueID: order.UniqueID,
			Type:          models.TxRefund,
			Amount:        split.UserRefund,
			Status:        models.TxCompleted,
			Details:       "refund for cancelled order",
		}); err != nil {
			return err
		}
		if err := store.AddVendorTransaction(&models.VendorTransaction{
			VendorID:      order.VendorID,
			OrderUniqueID: order.UniqueID,
			Type:          models.TxCompensation,
			Amount:        split.VendorClaw,
			Status:        models.TxCompleted,
			Details:       "claw-back for cancelled order",
		}); err != nil {
			return err
		}
		if err := store.AddRiderTransaction(&models.RiderTransaction{
			RiderID:       order.RiderID,
			OrderUniqueID: order.UniqueID,
			Type:          models.TxCompensation,
			Amount:        split.RiderClaw,
			Status:        models.TxCompleted,
			Details:       "claw-back for cancelled delivery",
		}); err != nil {
			return err
		}
	}

	order.DeliveryStatus = models.StatusCancelled
	if err := history(store, order, models.StatusCancelled); err != nil {
		return err
	}
	return store.AddDispute(&models.Dispute{
		OrderUniqueID: order.UniqueID,
		UserID:        order.UserID,
		Message:       "order cancelled by buyer",
	})
}
