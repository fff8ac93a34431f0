package services

import (
	"errors"
	"fmt"
	"log"

	"pasar/internal/ledger"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"

	"github.com/google/uuid"
)

// CheckoutService converts a buyer's cart lines into orders. The whole set
// is validated first and settles as one atomic batch: either every cart line
// becomes an order (sharing one tracking number) or none do.
type CheckoutService struct {
	settlements repositories.SettlementRepository
	rates       ledger.Rates
	mqClient    *rabbitmq.Client
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(settlements repositories.SettlementRepository, rates ledger.Rates, mqClient *rabbitmq.Client) *CheckoutService {
	return &CheckoutService{
		settlements: settlements,
		rates:       rates,
		mqClient:    mqClient,
	}
}

// checkoutLine holds the resolved rows for one validated cart line.
type checkoutLine struct {
	cart    *models.Cart
	product *models.Product
	fee     *models.ShippingFee
}

// Checkout validates and converts the given cart lines for one buyer.
// Validation failures are itemized per category and abort the whole batch
// with zero orders created. On success every cart line yields one order
// with status processing, one history row, and is flipped to checked_out;
// the shared tracking number and group total are returned.
func (s *CheckoutService) Checkout(userID string, cartIDs []string, paymentMethod string) (string, float64, error) {
	if len(cartIDs) == 0 {
		return "", 0, fmt.Errorf("no cart items to check out")
	}
	if paymentMethod != models.PaymentWallet {
		return "", 0, fmt.Errorf("payment method %s: %w", paymentMethod, ErrUnsupportedPayment)
	}

	trackingNumber := uuid.New().String()
	var total float64
	err := s.settlements.Settle(func(store repositories.SettlementStore) error {
		if _, err := store.DefaultAddress(userID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("user %s: %w", userID, ErrNoDefaultAddress)
			}
			return err
		}

		lines, err := resolveLines(store, userID, cartIDs)
		if err != nil {
			return err
		}

		for _, line := range lines {
			cost := line.product.Price * float64(line.cart.Quantity)
			split := ledger.SplitCheckout(cost, line.fee.Fee, s.rates)
			order := &models.Order{
				UniqueID:           uuid.New().String(),
				TrackingNumber:     trackingNumber,
				UserID:             userID,
				VendorID:           line.product.VendorID,
				RiderID:            line.fee.RiderID,
				ProductID:          line.product.ID,
				ShippingFeeID:      line.fee.ID,
				Quantity:           line.cart.Quantity,
				Amount:             cost + line.fee.Fee,
				ShippingFee:        line.fee.Fee,
				Credit:             split.Credit,
				ServiceCharge:      split.ServiceCharge,
				RiderCredit:        split.RiderCredit,
				RiderServiceCharge: split.RiderServiceCharge,
				PaymentMethod:      paymentMethod,
				DeliveryStatus:     models.StatusProcessing,
			}
			if err := store.CreateOrder(order); err != nil {
				return err
			}
			if err := history(store, order, models.StatusProcessing); err != nil {
				return err
			}
			line.cart.Status = models.CartCheckedOut
			total += order.Amount
		}
		return nil
	})
	if err != nil {
		return "", 0, err
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishSettlementEvent("order.checked_out", map[string]interface{}{
			"trackingNumber": trackingNumber,
			"userID":         userID,
			"total":          total,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish checkout event for tracking %s: %v", trackingNumber, err)
		}
	}
	return trackingNumber, total, nil
}

// resolveLines validates every cart line and resolves its product, vendor
// and shipping quote. All lines are checked even after the first failure so
// the returned CheckoutError carries the full per-category counts. A cart ID
// listed more than once counts as missing on the repeat: one cart line can
// only ever become one order.
func resolveLines(store repositories.SettlementStore, userID string, cartIDs []string) ([]checkoutLine, error) {
	var checkoutErr CheckoutError
	lines := make([]checkoutLine, 0, len(cartIDs))
	seen := make(map[string]bool, len(cartIDs))
	for _, cartID := range cartIDs {
		if seen[cartID] {
			checkoutErr.MissingCart++
			continue
		}
		seen[cartID] = true
		cart, err := store.Cart(cartID)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			checkoutErr.MissingCart++
			continue
		}
		if cart.UserID != userID || cart.Status != models.CartActive {
			checkoutErr.MissingCart++
			continue
		}

		line := checkoutLine{cart: cart}
		product, err := store.Product(cart.ProductID)
		switch {
		case err == nil:
			line.product = product
			if _, err := store.Vendor(product.VendorID); err != nil {
				if !errors.Is(err, repositories.ErrNotFound) {
					return nil, err
				}
				checkoutErr.MissingVendor++
			} else if product.Remaining < cart.Quantity {
				checkoutErr.InsufficientStock++
			}
		case errors.Is(err, repositories.ErrNotFound):
			checkoutErr.MissingProduct++
		default:
			return nil, err
		}

		fee, err := store.ShippingFee(cart.ShippingFeeID)
		switch {
		case err == nil:
			line.fee = fee
		case errors.Is(err, repositories.ErrNotFound):
			checkoutErr.MissingShipping++
		default:
			return nil, err
		}
		lines = append(lines, line)
	}
	if checkoutErr.Any() {
		return nil, &checkoutErr
	}
	return lines, nil
}
