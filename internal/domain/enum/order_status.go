package enum

import (
	"encoding/json"
	"strings"
)

// OrderStatus represents the status of an order.
type OrderStatus int

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusPaid
	OrderStatusDelivered
	OrderStatusCancelled
)

func (s OrderStatus) String() string {
	return [...]string{"Pending", "Paid", "Delivered", "Cancelled"}[s]
}

// Wire returns the lowercase form the upstream API uses.
func (s OrderStatus) Wire() string {
	return strings.ToLower(s.String())
}

// ParseOrderStatus maps a backend status string to an OrderStatus.
// Unknown values fall back to Pending.
func ParseOrderStatus(str string) OrderStatus {
	switch strings.ToLower(str) {
	case "paid":
		return OrderStatusPaid
	case "delivered":
		return OrderStatusDelivered
	case "cancelled":
		return OrderStatusCancelled
	default:
		return OrderStatusPending
	}
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	*s = ParseOrderStatus(str)
	return nil
}
