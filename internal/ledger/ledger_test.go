package ledger_test

import (
	"testing"

	"pasar/internal/ledger"

	"github.com/stretchr/testify/assert"
)

var testRates = ledger.Rates{
	CheckoutCharge: 10,
	CancelCharge:   20,
	CancelVendor:   100,
	CancelRider:    100,
	RefundCharge:   20,
	RefundVendor:   50,
	RefundRider:    50,
	RefundOrder:    0,
}

func TestSplitCheckout(t *testing.T) {
	// 500 order: 450 product cost + 50 shipping, 10% platform cut.
	split := ledger.SplitCheckout(450, 50, testRates)

	assert.Equal(t, 405.0, split.Credit)
	assert.Equal(t, 45.0, split.ServiceCharge)
	assert.Equal(t, 45.0, split.RiderCredit)
	assert.Equal(t, 5.0, split.RiderServiceCharge)
}

func TestSplitCheckout_PartsSumToAmount(t *testing.T) {
	cases := []struct {
		name string
		cost float64
		fee  float64
		pct  int
	}{
		{"round numbers", 450, 50, 10},
		{"odd percentages", 333, 17, 7},
		{"zero cut", 1000, 100, 0},
		{"full cut", 200, 20, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rates := testRates
			rates.CheckoutCharge = tc.pct
			split := ledger.SplitCheckout(tc.cost, tc.fee, rates)
			sum := split.Credit + split.ServiceCharge + split.RiderCredit + split.RiderServiceCharge
			assert.InDelta(t, tc.cost+tc.fee, sum, 1e-9)
		})
	}
}

func TestSplitCancellation(t *testing.T) {
	// 500 order at 20% cancellation: platform takes 100, half of the take
	// is charged back 50/50 to vendor and rider, buyer gets 400 back.
	split := ledger.SplitCancellation(500, testRates)

	assert.Equal(t, 100.0, split.PlatformTake)
	assert.Equal(t, 50.0, split.VendorClaw)
	assert.Equal(t, 50.0, split.RiderClaw)
	assert.Equal(t, 400.0, split.UserRefund)
}

func TestSplitCancellation_PartialShares(t *testing.T) {
	rates := testRates
	rates.CancelVendor = 60
	rates.CancelRider = 40

	split := ledger.SplitCancellation(500, rates)

	assert.Equal(t, 100.0, split.PlatformTake)
	assert.Equal(t, 30.0, split.VendorClaw)
	assert.Equal(t, 20.0, split.RiderClaw)
}

func TestSplitRefund(t *testing.T) {
	// Refundable excludes the shipping fee: 500 - 50 = 450, cut 90.
	split := ledger.SplitRefund(500, 50, testRates)

	assert.Equal(t, 450.0, split.Refundable)
	assert.Equal(t, 90.0, split.Cut)
	assert.Equal(t, 45.0, split.VendorClaw)
	assert.Equal(t, 45.0, split.RiderClaw)
	assert.Equal(t, 450.0, split.UserCredit)
}

func TestSplitRefund_BuyerAbsorbsShare(t *testing.T) {
	rates := testRates
	rates.RefundOrder = 50

	split := ledger.SplitRefund(500, 50, rates)

	assert.Equal(t, 90.0, split.Cut)
	assert.Equal(t, 405.0, split.UserCredit) // 450 - 50% of the cut
}

func TestClawback(t *testing.T) {
	// Claw-back never drives a balance negative; the shortfall becomes a
	// service-charge IOU instead.
	cases := []struct {
		name      string
		balance   float64
		amount    float64
		debit     float64
		shortfall float64
	}{
		{"covered", 405, 50, 50, 0},
		{"exact", 50, 50, 50, 0},
		{"short", 45, 50, 45, 5},
		{"empty balance", 0, 50, 0, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			debit, shortfall := ledger.Clawback(tc.balance, tc.amount)
			assert.Equal(t, tc.debit, debit)
			assert.Equal(t, tc.shortfall, shortfall)
			assert.GreaterOrEqual(t, tc.balance-debit, 0.0)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, ledger.Percent(10, 500))
	assert.Equal(t, 0.0, ledger.Percent(0, 500))
	assert.Equal(t, 500.0, ledger.Percent(100, 500))
	assert.InDelta(t, 16.65, ledger.Percent(5, 333), 1e-9)
}
