package billing

import "encoding/json"

// LineItem is one product/quantity pair in an in-progress order. It is
// ephemeral: created by product selection or quick-add, discarded when
// the draft is saved or abandoned. UnitPrice is in cents.
type LineItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"-"`
	Quantity  int    `json:"quantity"`
}

// MarshalJSON renders the unit price as a two-decimal currency value.
func (l LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"price"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
	})
}

// AddLineItem adds a product to the cart. If a line for the product id
// already exists its quantity is incremented by one; otherwise a new
// line with quantity one is appended. Stock availability is not
// checked here.
func AddLineItem(cart []LineItem, item LineItem) []LineItem {
	for i := range cart {
		if cart[i].ID == item.ID {
			cart[i].Quantity++
			return cart
		}
	}
	item.Quantity = 1
	return append(cart, item)
}

// UpdateQuantity adjusts a line's quantity by delta, clamping the
// result to a minimum of one. Decrementing never removes a line.
func UpdateQuantity(cart []LineItem, itemID string, delta int) []LineItem {
	for i := range cart {
		if cart[i].ID == itemID {
			q := cart[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			cart[i].Quantity = q
			return cart
		}
	}
	return cart
}

// RemoveLineItem removes the line for itemID entirely.
func RemoveLineItem(cart []LineItem, itemID string) []LineItem {
	out := cart[:0]
	for _, line := range cart {
		if line.ID != itemID {
			out = append(out, line)
		}
	}
	return out
}
