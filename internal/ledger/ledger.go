package ledger

// Rates holds the marketplace settlement percentages. All values are whole
// percents (0-100); amounts are computed as (pct * base) / 100 in float math.
type Rates struct {
	CheckoutCharge int // platform cut of product cost and shipping fee at checkout
	CancelCharge   int // platform take on a post-payment cancellation
	CancelVendor   int // vendor share of half the cancellation take
	CancelRider    int // rider share of half the cancellation take
	RefundCharge   int // platform cut of the refundable amount
	RefundVendor   int // vendor share of the refund cut
	RefundRider    int // rider share of the refund cut
	RefundOrder    int // share of the refund cut absorbed by the buyer
}

// CheckoutSplit is the vendor/rider earnings breakdown for one order.
type CheckoutSplit struct {
	Credit             float64 // vendor earnings after platform cut
	ServiceCharge      float64 // platform cut of the product cost
	RiderCredit        float64 // rider earnings after platform cut
	RiderServiceCharge float64 // platform cut of the shipping fee
}

// SplitCheckout computes the vendor/rider split for a product cost
// (price * quantity) and a shipping fee. The four parts always sum to
// cost + shippingFee.
func SplitCheckout(cost, shippingFee float64, rates Rates) CheckoutSplit {
	vendorCut := Percent(rates.CheckoutCharge, cost)
	riderCut := Percent(rates.CheckoutCharge, shippingFee)
	return CheckoutSplit{
		Credit:             cost - vendorCut,
		ServiceCharge:      vendorCut,
		RiderCredit:        shippingFee - riderCut,
		RiderServiceCharge: riderCut,
	}
}

// CancellationSplit is the money movement for cancelling a paid order: the
// platform takes its cut of the full amount, half of that take is charged
// back to the vendor and rider by their cancellation shares, and the buyer
// is refunded the remainder.
type CancellationSplit struct {
	PlatformTake float64
	VendorClaw   float64
	RiderClaw    float64
	UserRefund   float64
}

// SplitCancellation computes the cancellation breakdown for an order amount.
func SplitCancellation(amount float64, rates Rates) CancellationSplit {
	take := Percent(rates.CancelCharge, amount)
	half := take / 2
	return CancellationSplit{
		PlatformTake: take,
		VendorClaw:   Percent(rates.CancelVendor, half),
		RiderClaw:    Percent(rates.CancelRider, half),
		UserRefund:   amount - take,
	}
}

// RefundSplit is the money movement for an accepted refund. The refundable
// amount excludes the shipping fee; the platform cut of it is split four
// ways between platform, vendor, rider and the buyer.
type RefundSplit struct {
	Refundable float64
	Cut        float64
	VendorClaw float64
	RiderClaw  float64
	UserCredit float64
}

// SplitRefund computes the refund breakdown for an order amount and its
// shipping fee.
func SplitRefund(amount, shippingFee float64, rates Rates) RefundSplit {
	refundable := amount - shippingFee
	cut := Percent(rates.RefundCharge, refundable)
	return RefundSplit{
		Refundable: refundable,
		Cut:        cut,
		VendorClaw: Percent(rates.RefundVendor, cut),
		RiderClaw:  Percent(rates.RefundRider, cut),
		UserCredit: refundable - Percent(rates.RefundOrder, cut),
	}
}

// Clawback splits a claw-back amount against an available balance. The debit
// never exceeds the balance; any shortfall is owed to the platform and is
// tracked in the party's service_charge instead of driving the balance
// negative.
func Clawback(balance, amount float64) (debit, shortfall float64) {
	if amount <= balance {
		return amount, 0
	}
	return balance, amount - balance
}

// Percent returns pct% of base using plain float division.
func Percent(pct int, base float64) float64 {
	return float64(pct) * base / 100
}
