package upstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mithuncards/cardpos/internal/billing"
	"github.com/mithuncards/cardpos/internal/domain/entity"
	"github.com/mithuncards/cardpos/internal/domain/enum"
	domainRepo "github.com/mithuncards/cardpos/internal/domain/repository"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates an order repository backed by the upstream API.
func NewOrderRepository(client *Client) domainRepo.OrderRepository {
	return &orderRepository{client: client}
}

// wireOrder is the backend's order representation; amounts are decimal.
type wireOrder struct {
	ID       int64 `json:"id"`
	Customer *struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"customer"`
	CreatedAt     string          `json:"created_at"`
	SubTotal      float64         `json:"subtotal"`
	Tax           float64         `json:"tax"`
	Discount      float64         `json:"discount"`
	Total         float64         `json:"total"`
	AdvancePaid   float64         `json:"advance_paid"`
	BalanceDue    float64         `json:"balance_due"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Items         []wireOrderItem `json:"items"`
}

type wireOrderItem struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

func (w *wireOrder) toEntity() entity.Order {
	order := entity.Order{
		ID:            w.ID,
		OrderDate:     dateOnly(w.CreatedAt),
		Status:        enum.ParseOrderStatus(w.Status),
		SubTotal:      billing.Cents(w.SubTotal),
		Tax:           billing.Cents(w.Tax),
		Discount:      billing.Cents(w.Discount),
		Total:         billing.Cents(w.Total),
		AdvancePaid:   billing.Cents(w.AdvancePaid),
		BalanceDue:    billing.Cents(w.BalanceDue),
		PaymentMethod: w.PaymentMethod,
		CustomerName:  "N/A",
	}
	if w.Customer != nil {
		order.CustomerID = &w.Customer.ID
		order.CustomerName = w.Customer.Name
	}
	if ts, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		order.CreatedAt = ts
	}
	for _, item := range w.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:          item.ID,
			ProductName: item.ProductName,
			UnitPrice:   billing.Cents(item.UnitPrice),
			Quantity:    item.Quantity,
			Total:       billing.Cents(item.TotalPrice),
		})
	}
	return order
}

// dateOnly trims an RFC 3339 timestamp down to its date part.
func dateOnly(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}

// wireOrderPayload is the body the backend accepts for create/update.
type wireOrderPayload struct {
	CustomerID    int64                `json:"customer_id"`
	AdvancePaid   float64              `json:"advance_paid"`
	Discount      float64              `json:"discount"`
	PaymentMethod string               `json:"payment_method,omitempty"`
	Status        string               `json:"status,omitempty"`
	Items         []wireOrderItemEntry `json:"items"`
}

type wireOrderItemEntry struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func toWirePayload(payload *domainRepo.OrderPayload) *wireOrderPayload {
	wire := &wireOrderPayload{
		CustomerID:    payload.CustomerID,
		AdvancePaid:   float64(payload.AdvancePaid) / 100,
		Discount:      float64(payload.Discount) / 100,
		PaymentMethod: payload.PaymentMethod,
		Items:         make([]wireOrderItemEntry, 0, len(payload.Items)),
	}
	if payload.Status != nil {
		wire.Status = payload.Status.Wire()
	}
	for _, item := range payload.Items {
		wire.Items = append(wire.Items, wireOrderItemEntry{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   float64(item.UnitPrice) / 100,
		})
	}
	return wire
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var wires []wireOrder
	if err := r.client.do(ctx, "GET", "/orders", nil, &wires); err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0, len(wires))
	for i := range wires {
		orders = append(orders, wires[i].toEntity())
	}
	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, payload *domainRepo.OrderPayload) (*entity.Order, error) {
	var wire wireOrder
	if err := r.client.do(ctx, "POST", "/orders", toWirePayload(payload), &wire); err != nil {
		return nil, err
	}
	order := wire.toEntity()
	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, id int64, payload *domainRepo.OrderPayload) (*entity.Order, error) {
	var wire wireOrder
	if err := r.client.do(ctx, "PUT", fmt.Sprintf("/orders/%d", id), toWirePayload(payload), &wire); err != nil {
		return nil, err
	}
	order := wire.toEntity()
	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, "DELETE", fmt.Sprintf("/orders/%d", id), nil, nil)
}
