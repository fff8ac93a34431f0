package services_test

import (
	"testing"

	"pasar/internal/ledger"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var settlementRates = ledger.Rates{
	CheckoutCharge: 10,
	CancelCharge:   20,
	CancelVendor:   100,
	CancelRider:    100,
	RefundCharge:   20,
	RefundVendor:   50,
	RefundRider:    50,
	RefundOrder:    0,
}

// fixture holds one seeded marketplace: a buyer with a funded wallet and a
// default address, a vendor with one product in stock, and a rider with one
// shipping quote. Balances: buyer 1000, vendor 0, rider 0; product price
// 450, stock 5, shipping fee 50.
type fixture struct {
	db         *gorm.DB
	settlement *services.SettlementService
	checkout   *services.CheckoutService

	user    models.User
	vendor  models.Vendor
	rider   models.Rider
	product models.Product
	fee     models.ShippingFee
	cart    models.Cart
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{}, &models.Vendor{}, &models.Rider{}, &models.Address{},
		&models.Product{}, &models.Cart{}, &models.ShippingFee{},
		&models.Order{}, &models.OrderHistory{}, &models.OrderCompleted{}, &models.Dispute{},
		&models.UserTransaction{}, &models.VendorTransaction{}, &models.RiderTransaction{},
	)
	assert.NoError(t, err)

	// The shared-cache database survives across tests in the process, so
	// every fixture seeds unique names and emails.
	tag := uuid.New().String()[:8]
	f := &fixture{db: db}
	f.user = models.User{
		ID: uuid.New().String(), Username: "buyer-" + tag,
		Email: "buyer-" + tag + "@example.com", Password: "hash", Balance: 1000,
	}
	f.vendor = models.Vendor{
		ID: uuid.New().String(), Name: "vendor-" + tag,
		Email: "vendor-" + tag + "@example.com", Password: "hash",
	}
	f.rider = models.Rider{
		ID: uuid.New().String(), Name: "rider-" + tag,
		Email: "rider-" + tag + "@example.com", Password: "hash",
	}
	f.product = models.Product{
		ID: uuid.New().String(), VendorID: f.vendor.ID,
		Name: "Laptop " + tag, Price: 450, Remaining: 5,
	}
	f.fee = models.ShippingFee{ID: uuid.New().String(), RiderID: f.rider.ID, Fee: 50}
	f.cart = models.Cart{
		ID: uuid.New().String(), UserID: f.user.ID, ProductID: f.product.ID,
		ShippingFeeID: f.fee.ID, Quantity: 1, Status: models.CartActive,
	}
	address := models.Address{
		ID: uuid.New().String(), UserID: f.user.ID,
		Details: "Jl. Test No. 1", IsDefault: true,
	}

	assert.NoError(t, db.Create(&f.user).Error)
	assert.NoError(t, db.Create(&f.vendor).Error)
	assert.NoError(t, db.Create(&f.rider).Error)
	assert.NoError(t, db.Create(&address).Error)
	assert.NoError(t, db.Create(&f.product).Error)
	assert.NoError(t, db.Create(&f.fee).Error)
	assert.NoError(t, db.Create(&f.cart).Error)

	settlements := repositories.NewGORMSettlementRepository(db)
	f.settlement = services.NewSettlementService(settlements, settlementRates, nil)
	f.checkout = services.NewCheckoutService(settlements, settlementRates, nil)
	return f
}

func (f *fixture) reloadUser(t *testing.T) models.User {
	t.Helper()
	var u models.User
	assert.NoError(t, f.db.First(&u, "id = ?", f.user.ID).Error)
	return u
}

func (f *fixture) reloadVendor(t *testing.T) models.Vendor {
	t.Helper()
	var v models.Vendor
	assert.NoError(t, f.db.First(&v, "id = ?", f.vendor.ID).Error)
	return v
}

func (f *fixture) reloadRider(t *testing.T) models.Rider {
	t.Helper()
	var r models.Rider
	assert.NoError(t, f.db.First(&r, "id = ?", f.rider.ID).Error)
	return r
}

func (f *fixture) reloadProduct(t *testing.T) models.Product {
	t.Helper()
	var p models.Product
	assert.NoError(t, f.db.First(&p, "id = ?", f.product.ID).Error)
	return p
}

func (f *fixture) order(t *testing.T, uniqueID string) models.Order {
	t.Helper()
	var o models.Order
	assert.NoError(t, f.db.First(&o, "unique_id = ?", uniqueID).Error)
	return o
}

// checkoutAndPay runs the happy path up to a paid order and returns it.
func (f *fixture) checkoutAndPay(t *testing.T) models.Order {
	t.Helper()
	tracking, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID}, models.PaymentWallet)
	assert.NoError(t, err)
	orderIDs, err := f.settlement.MarkPaid(f.user.ID, tracking)
	assert.NoError(t, err)
	assert.Len(t, orderIDs, 1)
	return f.order(t, orderIDs[0])
}

func TestCheckout_CreatesOrderGroup(t *testing.T) {
	f := setupFixture(t)

	// Second cart line against the same product and quote.
	cart2 := models.Cart{
		ID: uuid.New().String(), UserID: f.user.ID, ProductID: f.product.ID,
		ShippingFeeID: f.fee.ID, Quantity: 2, Status: models.CartActive,
	}
	assert.NoError(t, f.db.Create(&cart2).Error)

	tracking, total, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID, cart2.ID}, models.PaymentWallet)
	assert.NoError(t, err)
	assert.NotEmpty(t, tracking)
	assert.Equal(t, 500.0+950.0, total) // 450+50 and 900+50

	var orders []models.Order
	assert.NoError(t, f.db.Find(&orders, "tracking_number = ?", tracking).Error)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, models.StatusProcessing, order.DeliveryStatus)
		assert.False(t, order.Paid)
		// The split always reassembles to the full amount.
		sum := order.Credit + order.ServiceCharge + order.RiderCredit + order.RiderServiceCharge
		assert.InDelta(t, order.Amount, sum, 1e-9)

		var count int64
		f.db.Model(&models.OrderHistory{}).Where("order_unique_id = ?", order.UniqueID).Count(&count)
		assert.EqualValues(t, 1, count)
	}

	var cart models.Cart
	assert.NoError(t, f.db.First(&cart, "id = ?", f.cart.ID).Error)
	assert.Equal(t, models.CartCheckedOut, cart.Status)

	// Nothing moves money at checkout.
	assert.Equal(t, 1000.0, f.reloadUser(t).Balance)
	assert.Equal(t, 5, f.reloadProduct(t).Remaining)
}

func TestCheckout_RejectsWholeBatchOnAnyBadLine(t *testing.T) {
	f := setupFixture(t)

	overstock := models.Cart{
		ID: uuid.New().String(), UserID: f.user.ID, ProductID: f.product.ID,
		ShippingFeeID: f.fee.ID, Quantity: 99, Status: models.CartActive,
	}
	ghostProduct := models.Cart{
		ID: uuid.New().String(), UserID: f.user.ID, ProductID: uuid.New().String(),
		ShippingFeeID: f.fee.ID, Quantity: 1, Status: models.CartActive,
	}
	assert.NoError(t, f.db.Create(&overstock).Error)
	assert.NoError(t, f.db.Create(&ghostProduct).Error)

	_, _, err := f.checkout.Checkout(
		f.user.ID,
		[]string{f.cart.ID, overstock.ID, ghostProduct.ID, uuid.New().String()},
		models.PaymentWallet,
	)
	var checkoutErr *services.CheckoutError
	assert.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, 1, checkoutErr.InsufficientStock)
	assert.Equal(t, 1, checkoutErr.MissingProduct)
	assert.Equal(t, 1, checkoutErr.MissingCart)

	// Zero orders, and the good line is untouched.
	var count int64
	f.db.Model(&models.Order{}).Where("user_id = ?", f.user.ID).Count(&count)
	assert.EqualValues(t, 0, count)
	var cart models.Cart
	assert.NoError(t, f.db.First(&cart, "id = ?", f.cart.ID).Error)
	assert.Equal(t, models.CartActive, cart.Status)
}

func TestCheckout_RejectsDuplicateCartLines(t *testing.T) {
	f := setupFixture(t)

	_, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID, f.cart.ID}, models.PaymentWallet)
	var checkoutErr *services.CheckoutError
	assert.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, 1, checkoutErr.MissingCart)

	// The repeated line creates nothing and the cart stays active.
	var count int64
	f.db.Model(&models.Order{}).Where("user_id = ?", f.user.ID).Count(&count)
	assert.EqualValues(t, 0, count)
	var cart models.Cart
	assert.NoError(t, f.db.First(&cart, "id = ?", f.cart.ID).Error)
	assert.Equal(t, models.CartActive, cart.Status)
}

func TestCheckout_RequiresDefaultAddress(t *testing.T) {
	f := setupFixture(t)
	f.db.Model(&models.Address{}).Where("user_id = ?", f.user.ID).Update("is_default", false)

	_, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID}, models.PaymentWallet)
	assert.ErrorIs(t, err, services.ErrNoDefaultAddress)
}

func TestCheckout_RejectsUnsupportedPaymentMethod(t *testing.T) {
	f := setupFixture(t)

	_, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID}, "cash")
	assert.ErrorIs(t, err, services.ErrUnsupportedPayment)
}

func TestMarkPaid_SettlesBalancesAndStock(t *testing.T) {
	f := setupFixture(t)
	tracking, total, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID}, models.PaymentWallet)
	assert.NoError(t, err)
	assert.Equal(t, 500.0, total)

	orderIDs, err := f.settlement.MarkPaid(f.user.ID, tracking)
	assert.NoError(t, err)
	assert.Len(t, orderIDs, 1)

	order := f.order(t, orderIDs[0])
	assert.True(t, order.Paid)
	assert.Equal(t, models.StatusPaid, order.DeliveryStatus)

	// 500 order at 10%: vendor 405/45, rider 45/5, buyer debited in full.
	assert.Equal(t, 500.0, f.reloadUser(t).Balance)
	vendor := f.reloadVendor(t)
	assert.Equal(t, 405.0, vendor.Balance)
	assert.Equal(t, 45.0, vendor.ServiceCharge)
	rider := f.reloadRider(t)
	assert.Equal(t, 45.0, rider.Balance)
	assert.Equal(t, 5.0, rider.ServiceCharge)
	assert.Equal(t, 4, f.reloadProduct(t).Remaining)

	var tx models.UserTransaction
	assert.NoError(t, f.db.First(&tx, "order_unique_id = ?", order.UniqueID).Error)
	assert.Equal(t, models.TxPayment, tx.Type)
	assert.Equal(t, 500.0, tx.Amount)
	assert.Equal(t, models.TxCompleted, tx.Status)
}

func TestMarkPaid_IsIdempotent(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)

	_, err := f.settlement.MarkPaid(f.user.ID, order.TrackingNumber)
	assert.ErrorIs(t, err, services.ErrAlreadyPaid)

	// Money moved exactly once.
	assert.Equal(t, 500.0, f.reloadUser(t).Balance)
	assert.Equal(t, 405.0, f.reloadVendor(t).Balance)
	assert.Equal(t, 4, f.reloadProduct(t).Remaining)
}

func TestMarkPaid_InsufficientFunds(t *testing.T) {
	f := setupFixture(t)
	tracking, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID}, models.PaymentWallet)
	assert.NoError(t, err)
	f.db.Model(&models.User{}).Where("id = ?", f.user.ID).Update("balance", 100)

	_, err = f.settlement.MarkPaid(f.user.ID, tracking)
	assert.ErrorIs(t, err, services.ErrInsufficientFunds)

	// Nothing settled: balances, stock and status untouched.
	assert.Equal(t, 100.0, f.reloadUser(t).Balance)
	assert.Equal(t, 0.0, f.reloadVendor(t).Balance)
	assert.Equal(t, 5, f.reloadProduct(t).Remaining)
	var order models.Order
	assert.NoError(t, f.db.First(&order, "tracking_number = ?", tracking).Error)
	assert.False(t, order.Paid)
	assert.Equal(t, models.StatusProcessing, order.DeliveryStatus)
}

func TestMarkPaid_GroupStockIsCumulative(t *testing.T) {
	f := setupFixture(t)

	// Two orders of 3 against a stock of 5: each fits on its own, the group
	// does not.
	f.db.Model(&models.Cart{}).Where("id = ?", f.cart.ID).Update("quantity", 3)
	cart2 := models.Cart{
		ID: uuid.New().String(), UserID: f.user.ID, ProductID: f.product.ID,
		ShippingFeeID: f.fee.ID, Quantity: 3, Status: models.CartActive,
	}
	assert.NoError(t, f.db.Create(&cart2).Error)
	f.db.Model(&models.User{}).Where("id = ?", f.user.ID).Update("balance", 10000)

	tracking, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID, cart2.ID}, models.PaymentWallet)
	assert.NoError(t, err)

	_, err = f.settlement.MarkPaid(f.user.ID, tracking)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	// Nothing settled and stock never goes negative.
	assert.Equal(t, 10000.0, f.reloadUser(t).Balance)
	assert.Equal(t, 5, f.reloadProduct(t).Remaining)
	var orders []models.Order
	assert.NoError(t, f.db.Find(&orders, "tracking_number = ?", tracking).Error)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.False(t, order.Paid)
		assert.Equal(t, models.StatusProcessing, order.DeliveryStatus)
	}
}

func TestMarkPaid_NotOwner(t *testing.T) {
	f := setupFixture(t)
	tracking, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID}, models.PaymentWallet)
	assert.NoError(t, err)

	_, err = f.settlement.MarkPaid(uuid.New().String(), tracking)
	assert.ErrorIs(t, err, services.ErrNotOwner)
}

func TestCancel_PaidOrderRefundsAndClawsBack(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)

	cancelled, err := f.settlement.CancelByTracking(f.user.ID, order.TrackingNumber)
	assert.NoError(t, err)
	assert.Equal(t, []string{order.UniqueID}, cancelled)

	// 500 order at 20% cancellation: platform takes 100, vendor and rider
	// are each clawed 50. The rider only holds 45, so the remaining 5 is
	// booked as a service-charge debt instead of a negative balance.
	assert.Equal(t, 900.0, f.reloadUser(t).Balance)
	vendor := f.reloadVendor(t)
	assert.Equal(t, 355.0, vendor.Balance)
	assert.Equal(t, 45.0, vendor.ServiceCharge)
	rider := f.reloadRider(t)
	assert.Equal(t, 0.0, rider.Balance)
	assert.Equal(t, 10.0, rider.ServiceCharge)
	assert.Equal(t, 5, f.reloadProduct(t).Remaining)

	order = f.order(t, order.UniqueID)
	assert.Equal(t, models.StatusCancelled, order.DeliveryStatus)

	var dispute models.Dispute
	assert.NoError(t, f.db.First(&dispute, "order_unique_id = ?", order.UniqueID).Error)
	assert.Equal(t, f.user.ID, dispute.UserID)
}

func TestCancel_UnpaidOrderMovesNoMoney(t *testing.T) {
	f := setupFixture(t)
	tracking, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID}, models.PaymentWallet)
	assert.NoError(t, err)

	_, err = f.settlement.CancelByTracking(f.user.ID, tracking)
	assert.NoError(t, err)

	assert.Equal(t, 1000.0, f.reloadUser(t).Balance)
	assert.Equal(t, 0.0, f.reloadVendor(t).Balance)
	assert.Equal(t, 5, f.reloadProduct(t).Remaining)
	var order models.Order
	assert.NoError(t, f.db.First(&order, "tracking_number = ?", tracking).Error)
	assert.Equal(t, models.StatusCancelled, order.DeliveryStatus)
}

func TestCancel_GroupAbortsWhenOneOrderShipped(t *testing.T) {
	f := setupFixture(t)
	cart2 := models.Cart{
		ID: uuid.New().String(), UserID: f.user.ID, ProductID: f.product.ID,
		ShippingFeeID: f.fee.ID, Quantity: 1, Status: models.CartActive,
	}
	assert.NoError(t, f.db.Create(&cart2).Error)

	tracking, _, err := f.checkout.Checkout(f.user.ID, []string{f.cart.ID, cart2.ID}, models.PaymentWallet)
	assert.NoError(t, err)
	_, err = f.settlement.MarkPaid(f.user.ID, tracking)
	assert.NoError(t, err)

	var orders []models.Order
	assert.NoError(t, f.db.Order("id").Find(&orders, "tracking_number = ?", tracking).Error)
	assert.NoError(t, f.settlement.MarkInTransit(f.rider.ID, orders[0].UniqueID, f.fee.ID))

	_, err = f.settlement.CancelByTracking(f.user.ID, tracking)
	assert.ErrorIs(t, err, services.ErrAlreadyShipped)

	// The sibling order is untouched by the aborted batch.
	sibling := f.order(t, orders[1].UniqueID)
	assert.Equal(t, models.StatusPaid, sibling.DeliveryStatus)
	assert.Equal(t, 0.0, f.reloadUser(t).Balance)
}

func TestShipping_RequiresTransitBeforeDelivery(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)

	err := f.settlement.MarkShipped(f.rider.ID, order.UniqueID, f.fee.ID)
	assert.ErrorIs(t, err, services.ErrNotInTransit)
}

func TestShipping_RejectsForeignRider(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)

	otherFee := models.ShippingFee{ID: uuid.New().String(), RiderID: uuid.New().String(), Fee: 75}
	assert.NoError(t, f.db.Create(&otherFee).Error)

	err := f.settlement.MarkInTransit(otherFee.RiderID, order.UniqueID, otherFee.ID)
	assert.ErrorIs(t, err, services.ErrNotOwner)
}

func TestShipping_FullDeliveryFlow(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)

	assert.NoError(t, f.settlement.MarkInTransit(f.rider.ID, order.UniqueID, f.fee.ID))
	assert.ErrorIs(t, f.settlement.MarkInTransit(f.rider.ID, order.UniqueID, f.fee.ID), services.ErrAlreadyInTransit)

	assert.NoError(t, f.settlement.MarkShipped(f.rider.ID, order.UniqueID, f.fee.ID))
	assert.ErrorIs(t, f.settlement.MarkShipped(f.rider.ID, order.UniqueID, f.fee.ID), services.ErrAlreadyShipped)

	assert.NoError(t, f.settlement.MarkCompleted(f.vendor.ID, order.UniqueID))
	order = f.order(t, order.UniqueID)
	assert.Equal(t, models.StatusCompleted, order.DeliveryStatus)

	// Completion snapshots the product and delivery address once.
	var snapshot models.OrderCompleted
	assert.NoError(t, f.db.First(&snapshot, "order_unique_id = ?", order.UniqueID).Error)
	assert.Equal(t, f.product.Name, snapshot.ProductName)
	assert.Equal(t, 450.0, snapshot.ProductPrice)
	assert.Equal(t, "Jl. Test No. 1", snapshot.Address)

	assert.ErrorIs(t, f.settlement.MarkCompleted(f.vendor.ID, order.UniqueID), services.ErrAlreadyCompleted)
}

// deliverOrder walks an order through transit, delivery and completion.
func (f *fixture) deliverOrder(t *testing.T, order models.Order) {
	t.Helper()
	assert.NoError(t, f.settlement.MarkInTransit(f.rider.ID, order.UniqueID, f.fee.ID))
	assert.NoError(t, f.settlement.MarkShipped(f.rider.ID, order.UniqueID, f.fee.ID))
	assert.NoError(t, f.settlement.MarkCompleted(f.vendor.ID, order.UniqueID))
}

func TestRefund_AcceptCreditsBuyerAndClawsBack(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)
	f.deliverOrder(t, order)

	assert.NoError(t, f.settlement.DisputeForRefund(f.user.ID, order.UniqueID, "item arrived broken"))
	assert.ErrorIs(t,
		f.settlement.DisputeForRefund(f.user.ID, order.UniqueID, "again"),
		services.ErrAlreadyDisputed)

	refunded, err := f.settlement.AcceptRefund(order.UniqueID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRefunded, refunded.DeliveryStatus)

	// Refundable is 450 (shipping excluded), cut 90 split 45/45 between
	// vendor and rider; the buyer gets the full 450 back.
	assert.Equal(t, 950.0, f.reloadUser(t).Balance)
	assert.Equal(t, 360.0, f.reloadVendor(t).Balance)
	assert.Equal(t, 0.0, f.reloadRider(t).Balance)
	assert.Equal(t, 5, f.reloadProduct(t).Remaining)

	var tx models.UserTransaction
	assert.NoError(t, f.db.First(&tx, "order_unique_id = ? AND type = ?", order.UniqueID, models.TxRefund).Error)
	assert.Equal(t, 450.0, tx.Amount)
	assert.Contains(t, tx.Details, "item arrived broken")
}

func TestRefund_DenyRecordsFeedbackOnly(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)
	f.deliverOrder(t, order)
	assert.NoError(t, f.settlement.DisputeForRefund(f.user.ID, order.UniqueID, "wrong color"))

	balanceBefore := f.reloadUser(t).Balance
	assert.NoError(t, f.settlement.DenyRefund(order.UniqueID, "photos show the listed color"))

	order = f.order(t, order.UniqueID)
	assert.Equal(t, models.StatusRefundDenied, order.DeliveryStatus)
	assert.Equal(t, balanceBefore, f.reloadUser(t).Balance)

	var disputes []models.Dispute
	assert.NoError(t, f.db.Order("id").Find(&disputes, "order_unique_id = ?", order.UniqueID).Error)
	assert.Len(t, disputes, 2)
	assert.Equal(t, "photos show the listed color", disputes[1].Message)

	_, err := f.settlement.AcceptRefund(order.UniqueID)
	assert.ErrorIs(t, err, services.ErrNotRefundable)
}

func TestRefund_RequiresCompletedOrder(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)

	err := f.settlement.DisputeForRefund(f.user.ID, order.UniqueID, "changed my mind")
	assert.ErrorIs(t, err, services.ErrNotCompleted)
}

func TestOrderHistory_RecordsEveryTransition(t *testing.T) {
	f := setupFixture(t)
	order := f.checkoutAndPay(t)
	f.deliverOrder(t, order)
	assert.NoError(t, f.settlement.DisputeForRefund(f.user.ID, order.UniqueID, "damaged"))
	_, err := f.settlement.AcceptRefund(order.UniqueID)
	assert.NoError(t, err)

	var histories []models.OrderHistory
	assert.NoError(t, f.db.Order("id").Find(&histories, "order_unique_id = ?", order.UniqueID).Error)

	statuses := make([]string, 0, len(histories))
	for _, h := range histories {
		statuses = append(statuses, h.OrderStatus)
	}
	assert.Equal(t, []string{
		models.StatusProcessing,
		models.StatusPaid,
		models.StatusShipping,
		models.StatusShipped,
		models.StatusCompleted,
		models.StatusRefund,
		models.StatusRefunded,
	}, statuses)
}
