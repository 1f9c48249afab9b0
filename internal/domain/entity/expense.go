package entity

import (
	"encoding/json"
	"time"
)

// Expense is a shop expenditure record cached from the upstream backend.
// Amount is in cents.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"-"`
	Date        string    `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON renders cents as a two-decimal currency value.
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}
