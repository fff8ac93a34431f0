package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// MarkInTransit moves a paid order into the shipping state. Only the rider
// that owns the order's shipping quote may take it.
func (s *SettlementService) MarkInTransit(riderID, orderID, shippingFeeID string) error {
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		order, err := store.Order(orderID)
		if err != nil {
			return err
		}
		fee, err := store.ShippingFee(shippingFeeID)
		if err != nil {
			return err
		}
		if fee.RiderID != riderID || order.ShippingFeeID != shippingFeeID {
			return fmt.Errorf("shipping quote %s: %w", shippingFeeID, ErrNotOwner)
		}
		if order.DeliveryStatus == models.StatusCancelled {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyCancelled)
		}
		if !order.Paid {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotPaid)
		}
		if order.Shipped || order.DeliveryStatus == models.StatusShipping {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyInTransit)
		}

		order.Shipped = true
		order.DeliveryStatus = models.StatusShipping
		return history(store, order, models.StatusShipping)
	})
	if err != nil {
		return err
	}

	s.publish("order.in_transit", map[string]interface{}{
		"orderID": orderID,
		"riderID": riderID,
	})
	return nil
}

// MarkShipped records delivery of an in-transit order.
func (s *SettlementService) MarkShipped(riderID, orderID, shippingFeeID string) error {
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		order, err := store.Order(orderID)
		if err != nil {
			return err
		}
		fee, err := store.ShippingFee(shippingFeeID)
		if err != nil {
			return err
		}
		if fee.RiderID != riderID || order.ShippingFeeID != shippingFeeID {
			return fmt.Errorf("shipping quote %s: %w", shippingFeeID, ErrNotOwner)
		}
		if order.DeliveryStatus == models.StatusShipped {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyShipped)
		}
		if !order.Shipped || order.DeliveryStatus != models.StatusShipping {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotInTransit)
		}

		order.DeliveryStatus = models.StatusShipped
		return history(store, order, models.StatusShipped)
	})
	if err != nil {
		return err
	}

	s.publish("order.shipped", map[string]interface{}{
		"orderID": orderID,
		"riderID": riderID,
	})
	return nil
}

// MarkCompleted completes a shipped order and freezes its shipping, address
// and product details into the completion snapshot, so later product or
// address edits don't rewrite history. Only the order's vendor may complete
// it.
func (s *SettlementService) MarkCompleted(vendorID, orderID string) error {
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		order, err := store.Order(orderID)
		if err != nil {
			return err
		}
		if order.VendorID != vendorID {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotOwner)
		}
		if order.DeliveryStatus == models.StatusCompleted {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrAlreadyCompleted)
		}
		if !order.Shipped || order.DeliveryStatus != models.StatusShipped {
			return fmt.Errorf("order %s: %w", order.UniqueID, ErrNotShipped)
		}
		product, err := store.Product(order.ProductID)
		if err != nil {
			return err
		}
		address, err := store.DefaultAddress(order.UserID)
		if err != nil {
			return err
		}

		order.DeliveryStatus = models.StatusCompleted
		if err := store.AddCompleted(&models.OrderCompleted{
			OrderUniqueID: order.UniqueID,
			ProductName:   product.Name,
			ProductPrice:  product.Price,
			Quantity:      order.Quantity,
			ShippingFee:   order.ShippingFee,
			Address:       address.Details,
		}); err != nil {
			return err
		}
		return history(store, order, models.StatusCompleted)
	})
	if err != nil {
		return err
	}

	s.publish("order.completed", map[string]interface{}{
		"orderID":  orderID,
		"vendorID": vendorID,
	})
	return nil
}
