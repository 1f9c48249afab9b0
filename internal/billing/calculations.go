package billing

import (
	"math"

	"github.com/mithuncards/cardpos/internal/domain/enum"
)

// All monetary arithmetic is carried out in cents.

// Cents converts a decimal currency amount to cents.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Subtotal sums unit price times quantity over all lines.
func Subtotal(cart []LineItem) int64 {
	var sum int64
	for _, line := range cart {
		sum += line.UnitPrice * int64(line.Quantity)
	}
	return sum
}

// Tax computes the tax amount for a subtotal at the given percentage
// rate. Returns zero when tax is disabled for the order.
func Tax(subtotal int64, rate float64, enabled bool) int64 {
	if !enabled {
		return 0
	}
	return int64(math.Round(float64(subtotal) * rate / 100))
}

// Total applies a flat discount on top of subtotal plus tax. The result
// is not floored at zero: a discount larger than subtotal plus tax
// yields a negative total.
func Total(subtotal, tax, discount int64) int64 {
	return subtotal + tax - discount
}

// BalanceDue is the amount still owed after the advance payment.
func BalanceDue(total, amountPaid int64) int64 {
	return total - amountPaid
}

// DeriveStatus returns Paid when the amount paid covers the total,
// Pending otherwise. Paying exactly the total counts as Paid.
func DeriveStatus(total, amountPaid int64) enum.OrderStatus {
	if amountPaid >= total {
		return enum.OrderStatusPaid
	}
	return enum.OrderStatusPending
}

// Totals bundles every derived monetary field for a draft order.
type Totals struct {
	SubTotal   int64
	Tax        int64
	Total      int64
	BalanceDue int64
	Status     enum.OrderStatus
}

// ComputeTotals derives all monetary fields for a cart in one pass.
func ComputeTotals(cart []LineItem, discount int64, taxRate float64, taxEnabled bool, amountPaid int64) Totals {
	subtotal := Subtotal(cart)
	tax := Tax(subtotal, taxRate, taxEnabled)
	total := Total(subtotal, tax, discount)
	return Totals{
		SubTotal:   subtotal,
		Tax:        tax,
		Total:      total,
		BalanceDue: BalanceDue(total, amountPaid),
		Status:     DeriveStatus(total, amountPaid),
	}
}
