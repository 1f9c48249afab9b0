package entity

import (
	"encoding/json"
	"time"

	"github.com/mithuncards/cardpos/internal/domain/enum"
)

// Order is the canonical persisted order as returned by the upstream
// backend. Monetary fields are held in cents; the backend is the sole
// authority for all of them.
type Order struct {
	ID            int64            `json:"id"`
	CustomerID    *int64           `json:"customer_id,omitempty"`
	CustomerName  string           `json:"customer"`
	OrderDate     string           `json:"date"` // YYYY-MM-DD
	Status        enum.OrderStatus `json:"status"`
	SubTotal      int64            `json:"-"`
	Tax           int64            `json:"-"`
	Discount      int64            `json:"-"`
	Total         int64            `json:"-"`
	AdvancePaid   int64            `json:"-"`
	BalanceDue    int64            `json:"-"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Items         []OrderItem      `json:"items,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// MarshalJSON renders cents as two-decimal currency values.
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal    float64 `json:"subtotal"`
		Tax         float64 `json:"tax"`
		Discount    float64 `json:"discount"`
		Total       float64 `json:"total"`
		AdvancePaid float64 `json:"advance_paid"`
		BalanceDue  float64 `json:"balance_due"`
	}{
		Alias:       Alias(o),
		SubTotal:    float64(o.SubTotal) / 100,
		Tax:         float64(o.Tax) / 100,
		Discount:    float64(o.Discount) / 100,
		Total:       float64(o.Total) / 100,
		AdvancePaid: float64(o.AdvancePaid) / 100,
		BalanceDue:  float64(o.BalanceDue) / 100,
	})
}

// GetTotalDecimal returns the total as a decimal value.
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// OrderItem is one product/quantity line within a persisted order.
type OrderItem struct {
	ID          int64  `json:"id"`
	ProductName string `json:"title"`
	UnitPrice   int64  `json:"-"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"-"`
}

// MarshalJSON renders cents as two-decimal currency values.
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		Total:     float64(i.Total) / 100,
	})
}
