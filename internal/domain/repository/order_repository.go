package repository

import (
	"context"

	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
)

// OrderItemPayload is one line submitted to the order-persistence
// collaborator. UnitPrice is in cents.
type OrderItemPayload struct {
	ProductName string
	Quantity    int
	UnitPrice   int64
}

// OrderPayload is the order representation the upstream backend accepts.
// AdvancePaid and Discount are in cents. Status is only sent on
// updates; the backend derives it on creation.
type OrderPayload struct {
	CustomerID    int64
	AdvancePaid   int64
	Discount      int64
	PaymentMethod string
	Status        *enum.OrderStatus
	Items         []OrderItemPayload
}

// OrderRepository proxies order persistence to the upstream backend.
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	Create(ctx context.Context, payload *OrderPayload) (*entity.Order, error)
	Update(ctx context.Context, id int64, payload *OrderPayload) (*entity.Order, error)
	Delete(ctx context.Context, id int64) error
}
