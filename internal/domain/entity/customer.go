package entity

import "time"

// Customer is a customer record cached from the upstream backend.
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	OrdersCount int       `json:"orders_count"`
	CreatedAt   time.Time `json:"created_at"`
}
